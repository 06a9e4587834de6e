// Package testutil provides shared helpers for integration tests.
package testutil

import (
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skypath/itinerary-search/internal/adapter/dataset"
	"github.com/skypath/itinerary-search/internal/catalog"
	"github.com/skypath/itinerary-search/internal/domain"
)

// MustParseTime parses an RFC3339 timestamp or fails the test.
func MustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

// DatasetPath returns the absolute path to the bundled flight dataset,
// resolved relative to this source file so tests work from any directory.
func DatasetPath(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok, "cannot resolve caller path")
	return filepath.Join(filepath.Dir(file), "..", "..", "data", "flights.json")
}

// LoadDataset loads the bundled flight dataset or fails the test.
func LoadDataset(t *testing.T) (*domain.Directory, *catalog.Catalog) {
	t.Helper()
	directory, cat, err := dataset.Load(DatasetPath(t))
	require.NoError(t, err)
	return directory, cat
}
