package loader

import (
	"encoding/json"
	"io/fs"
	"path"
	"sort"

	"rentgen/internal/domain/entity"
	"rentgen/internal/util"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// FindManifests returns the directories under fsys that hold a manifest, sorted.
func FindManifests(fsys fs.FS) ([]string, error) {
	matches, err := doublestar.Glob(fsys, "**/"+entity.ManifestFile)
	if err != nil {
		return nil, errors.Wrap(err, "search for manifests")
	}

	dirs := make([]string, 0, len(matches))
	for _, m := range matches {
		dirs = append(dirs, path.Dir(m))
	}
	sort.Strings(dirs)

	return dirs, nil
}

// LoadManifest reads and parses dir/manifest.json.
func LoadManifest(fsys fs.FS, dir string) (*entity.Manifest, error) {
	manifestPath := path.Join(dir, entity.ManifestFile)

	data, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "%s not found", manifestPath)
		}

		return nil, errors.Wrapf(err, "failed to read %s", manifestPath)
	}

	var manifest entity.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", manifestPath)
	}

	return &manifest, nil
}

// VerifyFile checks the size and sha256 of dir/name against meta.
func VerifyFile(fsys fs.FS, dir, name string, meta entity.FileMetadata) error {
	filePath := path.Join(dir, name)
	file, err := fsys.Open(filePath)
	if err != nil {
		return errors.Wrapf(err, "open %s", filePath)
	}
	defer file.Close()

	sum, size, err := util.Checksum(file)
	if err != nil {
		return errors.Wrapf(err, "hash %s", filePath)
	}
	if size != meta.SizeBytes {
		return errors.Errorf("size mismatch: manifest %d, file %d", meta.SizeBytes, size)
	}
	if sum != meta.SHA256 {
		return errors.New("sha256 mismatch")
	}

	return nil
}

// Validate checks that the manifest is complete enough to drive validation.
func Validate(m *entity.Manifest) error {
	if m.Version == "" {
		return errors.New("manifest version is required")
	}
	if m.Version != entity.ManifestVersion {
		return errors.Errorf("unsupported manifest version %q", m.Version)
	}
	if len(m.Files) == 0 {
		return errors.New("manifest lists no files")
	}

	return nil
}

// FileFor returns the file name the manifest lists for table.
func FileFor(m *entity.Manifest, table string) (string, entity.FileMetadata, bool) {
	for name, meta := range m.Files {
		if meta.Table == table {
			return name, meta, true
		}
	}

	return "", entity.FileMetadata{}, false
}
