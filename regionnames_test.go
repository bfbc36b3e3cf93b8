package regionnames_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/dys2p/regionnames"
	"github.com/dys2p/regionnames/cldr"
	"github.com/stretchr/testify/require"
)

func TestDisplayNameExamples(t *testing.T) {
	require.Equal(t, "アメリカ合衆国", regionnames.DisplayName("ja", "US"))
	require.Equal(t, "Bilinmeyen Bölge", regionnames.DisplayName("tr", "ZZ"))
	require.Equal(t, "United States", regionnames.DisplayName("en", "US"))
}

func TestSortedRegionCodesAmharic(t *testing.T) {
	sorted := regionnames.SortedRegionCodes("am")
	require.GreaterOrEqual(t, len(sorted), 7)
	require.Equal(t, []regionnames.RegionCode{"BQ", "CW", "SS", "SX", "HU", "HT", "IN"}, sorted[:7])
}

func TestOverridesAreReturnedLiterally(t *testing.T) {
	for id, data := range cldr.Locales {
		for code, name := range data.Names {
			require.Equal(t, name, regionnames.DisplayName(regionnames.LocaleID(id), regionnames.RegionCode(code)), "locale %s, code %s", id, code)
		}
	}
}

func TestSortedRegionCodesAreResolvable(t *testing.T) {
	for _, id := range regionnames.Default.IDs() {
		locale := regionnames.Default.Locale(id)
		sorted := locale.SortedRegionCodes()
		require.NotEmpty(t, sorted, id)

		seen := make(map[regionnames.RegionCode]bool)
		for _, code := range sorted {
			require.False(t, seen[code], "locale %s: duplicate %s", id, code)
			seen[code] = true

			_, err := locale.Name(code)
			require.NoError(t, err, "locale %s", id)
		}
	}
}

func TestLikelyRegionCodes(t *testing.T) {
	var withLikely int
	for id, data := range cldr.Locales {
		likely := regionnames.LikelyRegionCodes(regionnames.LocaleID(id))
		if data.Likely == nil {
			require.Nil(t, likely, id)
			continue
		}
		withLikely++
		require.NotEmpty(t, likely, id)
		for _, code := range likely {
			require.True(t, code.Valid(), "locale %s: %s", id, code)
		}
	}
	require.Greater(t, withLikely, 0)

	require.Equal(t, []regionnames.RegionCode{"IE"}, regionnames.LikelyRegionCodes("ga"))
	require.Nil(t, regionnames.LikelyRegionCodes("ja"))
}

func TestFallback(t *testing.T) {
	// inherited from the base locale
	require.Equal(t, "Kosovo", regionnames.DisplayName("ja", "XK"))
	// inherited from yo
	require.Equal(t, "Orílẹ́ède Gana", regionnames.DisplayName("yo_BJ", "GH"))
	require.Equal(t, "Orílɛ́ède Nàìjíríà", regionnames.DisplayName("yo_BJ", "NG"))
	// codes without a name are displayed as the unknown region
	require.Equal(t, "Bilinmeyen Bölge", regionnames.DisplayName("tr", "QQ"))
	require.Equal(t, "不明な地域", regionnames.DisplayName("ja", "not a code"))
	// unknown locales fall back to the base locale
	require.Equal(t, "Germany", regionnames.DisplayName("pl", "DE"))
	require.Equal(t, "Deutschland", regionnames.DisplayName("de_AT", "DE"))
	require.Equal(t, "Türkiye", regionnames.DisplayName("tr_CY", "TR"))
}

func TestNameNotFound(t *testing.T) {
	locale := regionnames.Default.Locale("tr")

	name, err := locale.Name("DE")
	require.NoError(t, err)
	require.Equal(t, "Almanya", name)

	_, err = locale.Name("QQ")
	require.True(t, errors.Is(err, regionnames.ErrNotFound))
}

func TestMerge(t *testing.T) {
	base := regionnames.NameTable{"US": "United States", "DE": "Germany"}
	overlay := regionnames.NameTable{"US": "Vereinigte Staaten", "us": "lower case"}

	merged := regionnames.Merge(base, overlay)
	require.Equal(t, regionnames.NameTable{
		"US": "Vereinigte Staaten",
		"DE": "Germany",
		"us": "lower case",
	}, merged)

	// inputs are unchanged
	require.Equal(t, "United States", base["US"])
	require.Len(t, base, 2)
	require.Len(t, overlay, 2)

	require.Equal(t, base, regionnames.Merge(base, nil))
	require.Equal(t, overlay, regionnames.Merge(nil, overlay))
}

func TestLocaleResolution(t *testing.T) {
	r := regionnames.Default

	require.Equal(t, regionnames.LocaleID("yo_BJ"), r.Locale("yo-BJ").ID())
	require.Equal(t, regionnames.LocaleID("yo_BJ"), r.Locale("yo_bj").ID())
	require.Equal(t, regionnames.LocaleID("yo"), r.Locale("yo_NG").ID())
	require.Equal(t, regionnames.LocaleID("en"), r.Locale("!!").ID())
	require.Equal(t, regionnames.LocaleID("en"), r.Locale("").ID())

	yoBJ := r.Locale("yo_BJ")
	require.Equal(t, regionnames.LocaleID("yo"), yoBJ.Parent().ID())
	require.Equal(t, regionnames.LocaleID("en"), yoBJ.Parent().Parent().ID())
	require.Nil(t, r.Base().Parent())

	// yo_BJ has no order of its own
	require.False(t, yoBJ.Curated())
	require.Equal(t, r.Base().SortedRegionCodes(), yoBJ.SortedRegionCodes())
	require.True(t, r.Locale("am").Curated())

	ids := r.IDs()
	require.Equal(t, regionnames.LocaleID("en"), ids[0])
	require.Len(t, ids, len(cldr.Locales))
}

func TestMatch(t *testing.T) {
	r := regionnames.Default
	require.Equal(t, regionnames.LocaleID("ja"), r.Match("ja-JP,en;q=0.5").ID())
	require.Equal(t, regionnames.LocaleID("tr"), r.Match("tr").ID())
	require.Equal(t, regionnames.LocaleID("en"), r.Match("pl").ID())
	require.Equal(t, regionnames.LocaleID("en"), r.Match().ID())
}

func TestAccessorsReturnCopies(t *testing.T) {
	locale := regionnames.Default.Locale("tr")

	sorted := locale.SortedRegionCodes()
	sorted[0] = "XX"
	require.NotEqual(t, regionnames.RegionCode("XX"), locale.SortedRegionCodes()[0])

	names := locale.Names()
	names["DE"] = "changed"
	require.Equal(t, "Almanya", locale.DisplayName("DE"))

	overrides := locale.Overrides()
	require.Equal(t, "Almanya", overrides["DE"])
	_, inherited := overrides["XK"]
	require.False(t, inherited)
}

func TestEntries(t *testing.T) {
	locale := regionnames.Default.Locale("am")
	entries := locale.Entries()
	require.Len(t, entries, len(locale.SortedRegionCodes()))
	require.Equal(t, regionnames.Entry{Code: "BQ", Name: "Caribbean Netherlands"}, entries[0])
	require.Equal(t, regionnames.Entry{Code: "HU", Name: "ሀንጋሪ"}, entries[4])
}

func TestNative(t *testing.T) {
	locale := regionnames.Default.Locale("yo_BJ")

	data, err := json.Marshal(locale)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))

	names := locale.Names()
	require.Len(t, decoded, len(names))
	for code, name := range names {
		require.Equal(t, name, decoded[string(code)])
	}

	// keys start in display order
	first := locale.SortedRegionCodes()[0]
	prefix := `{"` + string(first) + `":`
	require.Equal(t, prefix, string(data[:len(prefix)]))
}

func TestCollated(t *testing.T) {
	locale := regionnames.Default.Locale("en")
	entries := locale.Collated([]regionnames.RegionCode{"AT", "AX", "AF"})
	require.Equal(t, []regionnames.Entry{
		{Code: "AF", Name: "Afghanistan"},
		{Code: "AX", Name: "Åland Islands"},
		{Code: "AT", Name: "Austria"},
	}, entries)

	all := locale.Collated(nil)
	for _, e := range all {
		require.True(t, e.Code.IsCountry(), e.Code)
	}
	require.Len(t, all, len(locale.SortedRegionCodes()))
}

func TestGroups(t *testing.T) {
	require.True(t, regionnames.Contains("EU", "DE"))
	require.True(t, regionnames.Contains("EZ", "HR"))
	require.False(t, regionnames.Contains("EU", "CH"))
	require.False(t, regionnames.Contains("EZ", "SE"))
	require.False(t, regionnames.Contains("US", "US"))

	require.Len(t, regionnames.Members("EU"), 27)
	require.Len(t, regionnames.Members("EZ"), 20)
	require.Nil(t, regionnames.Members("XX"))

	entries := []regionnames.Entry{{Code: "CH"}, {Code: "FR"}, {Code: "NO"}, {Code: "AT"}}
	require.Equal(t, []regionnames.Entry{{Code: "FR"}, {Code: "AT"}}, regionnames.Filter(entries, "EU"))
}
