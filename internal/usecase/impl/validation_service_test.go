package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"rentgen/internal/domain/entity"
	domainerrors "rentgen/internal/domain/errors"
	"rentgen/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func problemMessages(report *usecase.ValidationReport) []string {
	var out []string
	for _, ds := range report.Datasets {
		for _, p := range ds.Problems {
			out = append(out, p.String())
		}
	}

	return out
}

func containsProblem(problems []string, fragment string) bool {
	for _, p := range problems {
		if strings.Contains(p, fragment) {
			return true
		}
	}

	return false
}

func TestValidationService_AcceptsGeneratedDataset(t *testing.T) {
	root := t.TempDir()
	result := generateInto(t, newTestConfig(root, 5), 1)

	report, err := NewValidationService(newDiscardLogger()).Validate(context.Background(), root)
	require.NoError(t, err, problemMessages(report))

	require.Len(t, report.Datasets, 1)
	ds := report.Datasets[0]
	assert.Equal(t, "data5", ds.Dir)
	assert.True(t, ds.Valid())
	assert.Equal(t, result.Counts, ds.Rows)
}

func TestValidationService_RejectsTamperedFile(t *testing.T) {
	root := t.TempDir()
	generateInto(t, newTestConfig(root, 5), 1)

	bookings := filepath.Join(root, "data5", "bookings5.csv")
	f, err := os.OpenFile(bookings, os.O_APPEND|os.O_WRONLY, 0)
	require.NoError(t, err)
	_, err = f.WriteString("B999999999,2024-01-01 00:00:00,2024-01-01,2024-01-02,U000000000,P000000000\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	report, err := NewValidationService(newDiscardLogger()).Validate(context.Background(), root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDatasetInvalid)

	problems := problemMessages(report)
	assert.True(t, containsProblem(problems, "bookings5.csv: size mismatch"), problems)
	assert.True(t, containsProblem(problems, "26 rows, manifest lists 25"), problems)
}

func TestValidationService_ReportsBrokenInvariants(t *testing.T) {
	root := t.TempDir()
	day := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	ds := &entity.Dataset{
		Users: []entity.User{
			{ID: "U000000000", Birth: day},
			{ID: "U000000001", Birth: day},
			{ID: "U000000002", Birth: day},
		},
		Guests: []entity.Guest{{UserID: "U000000000"}},
		Hosts:  []entity.Host{{UserID: "U000000001"}},
		Properties: []entity.Property{
			{ID: "P000000000", HostUserID: "U000000001", PriceCents: 1500},
			{ID: "P000000001", HostUserID: "U000000000", PriceCents: 1500},
		},
		Bookings: []entity.Booking{
			{ID: "B000000000", Timestamp: day, CheckIn: day, CheckOut: day, GuestUserID: "U000000000", PropertyID: "P000000000"},
		},
		Promotions: []entity.Promotion{
			{ID: "PR000000000", StartDate: day, EndDate: day.AddDate(0, 0, 31), DiscountRate: 10, PropertyID: "P000000000"},
		},
		Reviews: []entity.Review{
			{ID: "R000000000", BookingID: "B000000007", Rating: 3},
		},
		Favorites: []entity.Favorite{
			{PropertyID: "P000000000", GuestUserID: "U000000000"},
			{PropertyID: "P000000000", GuestUserID: "U000000000"},
		},
		Messages: []entity.Message{
			{ID: "M000000000", GuestUserID: "U000000000", HostUserID: "U000000000", SentAt: day},
		},
	}
	exportDataset(t, root, "x", ds)

	report, err := NewValidationService(newDiscardLogger()).Validate(context.Background(), root)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDatasetInvalid)

	problems := problemMessages(report)
	expected := []string{
		"hostsx.csv: 1 guests and 1 hosts do not cover 3 users",
		"propertiesx.csv:3: unknown host U000000000",
		"bookingsx.csv:2: 2024-05-01 to 2024-05-01 spans 0 days",
		"promotionsx.csv:2: 2024-05-01 to 2024-06-01 spans 31 days",
		"reviewsx.csv:2: unknown booking B000000007",
		"select_favoritesx.csv:3: duplicate favorite U000000000/P000000000",
		"messagesx.csv:2: unknown host U000000000",
	}
	for _, want := range expected {
		assert.True(t, containsProblem(problems, want), "missing %q in %v", want, problems)
	}
	assert.Len(t, problems, len(expected))
}

func TestValidationService_ChecksManifestTables(t *testing.T) {
	root := t.TempDir()
	generateInto(t, newTestConfig(root, 5), 1)
	dir := filepath.Join(root, "data5")

	data, err := os.ReadFile(filepath.Join(dir, entity.ManifestFile))
	require.NoError(t, err)
	var manifest entity.Manifest
	require.NoError(t, json.Unmarshal(data, &manifest))

	extra := []byte("id\n1\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.csv"), extra, 0o600))
	sum := sha256.Sum256(extra)
	manifest.Files["extra.csv"] = entity.FileMetadata{
		Table:     "bogus",
		Columns:   []string{"id"},
		Rows:      1,
		SizeBytes: int64(len(extra)),
		SHA256:    hex.EncodeToString(sum[:]),
	}

	hosts := manifest.Files["hosts5.csv"]
	hosts.Columns = []string{"host_id"}
	manifest.Files["hosts5.csv"] = hosts

	data, err = json.Marshal(manifest)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, entity.ManifestFile), data, 0o600))

	report, err := NewValidationService(newDiscardLogger()).Validate(context.Background(), root)
	require.ErrorIs(t, err, domainerrors.ErrDatasetInvalid)

	assert.Equal(t, []string{
		`extra.csv: unknown table "bogus"`,
		"hosts5.csv: manifest columns [host_id], want [user_id]",
	}, problemMessages(report))
}

func TestValidationService_NoManifest(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "usuarios.csv"), []byte("user_id\n"), 0o600))

	_, err := NewValidationService(newDiscardLogger()).Validate(context.Background(), root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no manifest.json found")
}

func TestValidationService_MissingRoot(t *testing.T) {
	_, err := NewValidationService(newDiscardLogger()).Validate(context.Background(), filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open dataset root")
}

func TestValidationService_UnreadableManifest(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "data1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "data1", entity.ManifestFile), []byte("{}"), 0o600))

	report, err := NewValidationService(newDiscardLogger()).Validate(context.Background(), root)
	require.ErrorIs(t, err, domainerrors.ErrDatasetInvalid)
	assert.Equal(t, []string{"manifest.json: manifest version is required"}, problemMessages(report))
}
