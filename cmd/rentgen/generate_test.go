package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"rentgen/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `env:
  serviceName: rentgen
  log:
    level: error
generation:
  seed: 5
  scale: 2
  ratios:
    users: 10
    properties: 2
    bookings: 5
    promotions: 1
    amenities: 5
    reviews: 2
    messages: 2
  guestProbability: 0.6
  favoriteDensity: 1
  referenceTime: "2024-10-18T09:30:00Z"
export:
  output: ./does-not-matter
  compression: none
  manifest: true
`

func writeTestConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o600))

	return path
}

func TestApplyOverrides(t *testing.T) {
	cfg, err := config.New(writeTestConfig(t))
	require.NoError(t, err)

	flags := newGenerateFlags()
	require.NoError(t, flags.cmd.Parse([]string{"-seed", "9", "-output", "/tmp/x", "-compression", "lz4"}))
	require.NoError(t, applyOverrides(cfg, &flags))

	assert.Equal(t, int64(9), cfg.Generation.Seed)
	assert.Equal(t, 2, cfg.Generation.Scale, "unset flags keep file values")
	assert.Equal(t, "/tmp/x", cfg.Export.Output)
	assert.Equal(t, config.CompressionLZ4, cfg.Export.Compression)
	assert.Equal(t, "2", cfg.Suffix())
}

func TestApplyOverrides_Invalid(t *testing.T) {
	cfg, err := config.New(writeTestConfig(t))
	require.NoError(t, err)

	flags := newGenerateFlags()
	require.NoError(t, flags.cmd.Parse([]string{"-compression", "zip"}))
	assert.Error(t, applyOverrides(cfg, &flags))
}

func TestNewRunInfo(t *testing.T) {
	cfg, err := config.New(writeTestConfig(t))
	require.NoError(t, err)

	run, err := newRunInfo(cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(5), run.Seed)
	assert.Equal(t, time.Date(2024, time.October, 18, 9, 30, 0, 0, time.UTC), run.ReferenceTime)

	cfg.Generation.Seed = 0
	cfg.Generation.ReferenceTime = ""
	run, err = newRunInfo(cfg)
	require.NoError(t, err)
	assert.NotZero(t, run.Seed)
	assert.WithinDuration(t, time.Now(), run.ReferenceTime, time.Minute)
}

func TestGenerateThenValidate(t *testing.T) {
	out := t.TempDir()

	flags := newGenerateFlags()
	require.NoError(t, flags.cmd.Parse([]string{"-config", writeTestConfig(t), "-output", out, "-compression", "lz4"}))
	require.NoError(t, runGenerate(context.Background(), &flags))

	_, err := os.Stat(filepath.Join(out, "data2", "usuarios2.csv.lz4"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "data2", "manifest.json"))
	require.NoError(t, err)

	assert.NoError(t, runValidate(context.Background(), out, false, "error"))
}

func TestGenerate_MissingOutputDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "absent")

	flags := newGenerateFlags()
	require.NoError(t, flags.cmd.Parse([]string{"-config", writeTestConfig(t), "-output", out}))
	assert.Error(t, runGenerate(context.Background(), &flags))

	flags = newGenerateFlags()
	require.NoError(t, flags.cmd.Parse([]string{"-config", writeTestConfig(t), "-output", out, "-create-dir"}))
	require.NoError(t, runGenerate(context.Background(), &flags))

	_, err := os.Stat(filepath.Join(out, "data2", "messages2.csv"))
	assert.NoError(t, err)
}
