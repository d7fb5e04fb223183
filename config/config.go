package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"rentgen/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath        = "."
	defaultConfigName  = "config"
	defaultCompression = CompressionNone
	defaultBcryptCost  = 4
)

// Export compression modes.
const (
	CompressionNone = "none"
	CompressionLZ4  = "lz4"
)

type Config struct {
	Env struct {
		// Env and ServiceName are attached to every log line
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		// Debug forces debug-level logging regardless of Log.Level
		Debug bool `json:"debug" yaml:"debug"`
		Log   Log  `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// Generation configures record volumes and distributions
	Generation *GenerationConfig `json:"generation" yaml:"generation" validate:"required"`

	// Export configures where and how tables are written
	Export *ExportConfig `json:"export" yaml:"export" validate:"required"`

	// Auth configures how generated passwords are stored
	Auth *AuthConfig `json:"auth" yaml:"auth"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// GenerationConfig defines the size and shape of a generated dataset.
// Entity counts are Scale multiplied by the entity's ratio.
type GenerationConfig struct {
	// Seed for every random draw. Zero picks a fresh seed, which is recorded in the manifest.
	Seed int64 `json:"seed" yaml:"seed"`

	// Scale is the base unit all ratios multiply
	Scale int `json:"scale" yaml:"scale" validate:"gte=0"`

	Ratios Ratios `json:"ratios" yaml:"ratios"`

	// Probability that a user becomes a guest rather than a host
	GuestProbability float64 `json:"guestProbability" yaml:"guestProbability" validate:"gte=0,lte=1"`

	// Favorites to generate as a fraction of the guest count
	FavoriteDensity float64 `json:"favoriteDensity" yaml:"favoriteDensity" validate:"gte=0"`

	// ReferenceTime anchors "this year" and ages (RFC 3339). Empty means now.
	ReferenceTime string `json:"referenceTime" yaml:"referenceTime" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// Ratios are per-entity multipliers of GenerationConfig.Scale.
type Ratios struct {
	Users      int `json:"users" yaml:"users" validate:"gte=0"`
	Properties int `json:"properties" yaml:"properties" validate:"gte=0"`
	Bookings   int `json:"bookings" yaml:"bookings" validate:"gte=0"`
	Promotions int `json:"promotions" yaml:"promotions" validate:"gte=0"`
	Amenities  int `json:"amenities" yaml:"amenities" validate:"gte=0"`
	Reviews    int `json:"reviews" yaml:"reviews" validate:"gte=0"`
	Messages   int `json:"messages" yaml:"messages" validate:"gte=0"`
}

// ExportConfig defines the destination of exported tables.
type ExportConfig struct {
	// Output is a directory path or a blob URL (file:///..., mem://)
	Output string `json:"output" yaml:"output" validate:"required"`

	// SizeSuffix is appended to the dataset directory and file stems. Empty means the scale.
	SizeSuffix string `json:"sizeSuffix" yaml:"sizeSuffix"`

	// CreateDir creates a missing output directory instead of failing
	CreateDir bool `json:"createDir" yaml:"createDir"`

	// Compression of table files: none or lz4
	Compression string `json:"compression" yaml:"compression" validate:"oneof=none lz4"`

	// Manifest enables manifest.json next to the tables
	Manifest bool `json:"manifest" yaml:"manifest"`
}

// AuthConfig defines how generated passwords are written.
type AuthConfig struct {
	HashPasswords bool `json:"hashPasswords" yaml:"hashPasswords"`
	BcryptCost    int  `json:"bcryptCost" yaml:"bcryptCost" validate:"omitempty,min=4,max=31"`
}

// Params converts the generation settings into entity counts.
func (c *Config) Params() entity.GenerationParams {
	g := c.Generation
	params := entity.GenerationParams{
		Users:            g.Scale * g.Ratios.Users,
		GuestProbability: g.GuestProbability,
		Properties:       g.Scale * g.Ratios.Properties,
		Bookings:         g.Scale * g.Ratios.Bookings,
		Promotions:       g.Scale * g.Ratios.Promotions,
		Amenities:        g.Scale * g.Ratios.Amenities,
		Reviews:          g.Scale * g.Ratios.Reviews,
		FavoriteDensity:  g.FavoriteDensity,
		Messages:         g.Scale * g.Ratios.Messages,
	}
	if c.Auth != nil {
		params.HashPasswords = c.Auth.HashPasswords
	}

	return params
}

// Suffix returns the configured size suffix, defaulting to the scale.
func (c *Config) Suffix() string {
	if c.Export.SizeSuffix != "" {
		return c.Export.SizeSuffix
	}

	return strconv.Itoa(c.Generation.Scale)
}

// ReferenceTime parses Generation.ReferenceTime, falling back to now.
func (c *Config) ReferenceTime(now time.Time) (time.Time, error) {
	if strings.TrimSpace(c.Generation.ReferenceTime) == "" {
		return now.UTC(), nil
	}

	t, err := time.Parse(time.RFC3339, c.Generation.ReferenceTime)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "parse generation.referenceTime")
	}

	return t.UTC(), nil
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return LoadFile[T](candidate)
		}
	}

	return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

// LoadFile loads one yaml file and overlays environment variables on it.
func LoadFile[T any](configFile string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read config %s failed", configFile)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// GENERATION_GUESTPROBABILITY -> generation.guestProbability
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal config %s failed", configFile)
	}

	return cfg, nil
}

// New loads the configuration from path, or from config.yaml in the default
// search paths when path is empty, then applies defaults and validates it.
func New(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = LoadFile[Config](path)
	} else {
		cfg, err = LoadWithEnv[Config](defaultConfigName, "config", "../config", "../../config")
	}
	if err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills optional settings left empty.
func ApplyDefaults(cfg *Config) {
	if cfg.Export != nil && strings.TrimSpace(cfg.Export.Compression) == "" {
		cfg.Export.Compression = defaultCompression
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Env.Log.Level == "" {
		cfg.Env.Log.Level = "info"
	}
}

// Validate checks struct constraints.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
