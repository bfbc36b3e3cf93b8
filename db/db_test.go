package db_test

import (
	"path/filepath"
	"testing"

	"github.com/dys2p/regionnames"
	"github.com/dys2p/regionnames/cldr"
	"github.com/dys2p/regionnames/db"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *db.DB {
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "regionnames.sqlite3"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestExportImport(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, database.Export(regionnames.Default.Sources()))

	src, err := database.Sources()
	require.NoError(t, err)
	require.Equal(t, regionnames.Default.Sources(), src)

	r, err := regionnames.Load(src, cldr.Base)
	require.NoError(t, err)
	require.Equal(t, regionnames.Default.IDs(), r.IDs())

	for _, id := range r.IDs() {
		want := regionnames.Default.Locale(id)
		got := r.Locale(id)
		require.Equal(t, want.Names(), got.Names(), id)
		require.Equal(t, want.SortedRegionCodes(), got.SortedRegionCodes(), id)
		require.Equal(t, want.LikelyRegionCodes(), got.LikelyRegionCodes(), id)
		require.Equal(t, want.Curated(), got.Curated(), id)
	}

	require.Equal(t, "アメリカ合衆国", r.DisplayName("ja", "US"))
}

func TestExportReplaces(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, database.Export(regionnames.Default.Sources()))

	small := map[string]*cldr.Locale{
		"en": {
			ID:     "en",
			Names:  map[string]string{"DE": "Germany", "ZZ": "Unknown Region"},
			Sorted: []string{}, // curated, but empty
		},
		"de": {
			ID:    "de",
			Names: map[string]string{"DE": "Deutschland"},
		},
	}
	require.NoError(t, database.Export(small))

	src, err := database.Sources()
	require.NoError(t, err)
	require.Equal(t, small, src)
	require.NotNil(t, src["en"].Sorted)
	require.Nil(t, src["de"].Sorted)
	require.Nil(t, src["de"].Likely)
}
