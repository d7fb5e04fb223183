package entity

import "time"

// GenerationParams are the volumes and distributions of one run.
type GenerationParams struct {
	Users            int     `json:"users"`
	GuestProbability float64 `json:"guest_probability"`
	Properties       int     `json:"properties"`
	Bookings         int     `json:"bookings"`
	Promotions       int     `json:"promotions"`
	Amenities        int     `json:"amenities"`
	Reviews          int     `json:"reviews"`
	FavoriteDensity  float64 `json:"favorite_density"`
	Messages         int     `json:"messages"`
	HashPasswords    bool    `json:"hash_passwords"`
}

// ManifestVersion is the manifest format written by this build.
const ManifestVersion = "1.0"

// Manifest describes an exported dataset directory.
type Manifest struct {
	Version       string                  `json:"version"`
	RunID         string                  `json:"run_id"`
	Seed          int64                   `json:"seed"`
	ReferenceTime time.Time               `json:"reference_time"`
	GeneratedAt   time.Time               `json:"generated_at"`
	SizeSuffix    string                  `json:"size_suffix"`
	Compression   string                  `json:"compression"`
	Parameters    GenerationParams        `json:"parameters"`
	Files         map[string]FileMetadata `json:"files"`
}

// FileMetadata describes one exported table file.
type FileMetadata struct {
	Table     string   `json:"table"`
	Columns   []string `json:"columns"`
	Rows      int      `json:"rows"`
	SizeBytes int64    `json:"size_bytes"`
	SHA256    string   `json:"sha256"`
}

// ManifestFile is the name of the manifest written next to the tables of a dataset.
const ManifestFile = "manifest.json"

// DatasetDir is the directory holding a dataset with the given size suffix.
func DatasetDir(suffix string) string {
	return "data" + suffix
}

// RunInfo pins the randomness of a run: a dataset is reproduced by reusing both.
type RunInfo struct {
	Seed          int64
	ReferenceTime time.Time
}
