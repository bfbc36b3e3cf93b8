package cldrgen

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dys2p/regionnames"
	"github.com/dys2p/regionnames/cldr"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const territoriesJSON = `{
  "main": {
    "yo-BJ": {
      "identity": {"language": "yo", "territory": "BJ"},
      "localeDisplayNames": {
        "territories": {
          "BJ": "Orílɛ́ède Bɛ̀nɛ̀",
          "GB": "Orílɛ́ède Gɛ̀ɛ́sì",
          "GB-alt-short": "UK",
          "ZZ": "Àgbègbè àìmɔ̀"
        }
      }
    }
  }
}`

func TestReadTerritories(t *testing.T) {
	for _, locale := range []string{"yo_BJ", "yo-BJ"} {
		names, err := ReadTerritories(strings.NewReader(territoriesJSON), locale)
		require.NoError(t, err)
		require.Equal(t, map[string]string{
			"BJ": "Orílɛ́ède Bɛ̀nɛ̀",
			"GB": "Orílɛ́ède Gɛ̀ɛ́sì",
			"ZZ": "Àgbègbè àìmɔ̀",
		}, names)
	}

	_, err := ReadTerritories(strings.NewReader(territoriesJSON), "yo")
	require.True(t, errors.Is(err, ErrLocaleMissing))

	_, err = ReadTerritories(strings.NewReader("{"), "yo")
	require.Error(t, err)
}

func TestFromDisplay(t *testing.T) {
	names := FromDisplay(language.German, []string{"DE", "1"})
	require.Equal(t, "Deutschland", names["DE"])
	require.NotContains(t, names, "1")
}

func TestBuild(t *testing.T) {
	base := map[string]string{
		"150": "Europe",
		"AT":  "Austria",
		"BQ":  "Caribbean Netherlands",
		"CW":  "Curaçao",
		"DE":  "Germany",
		"EU":  "European Union",
		"TR":  "Turkey",
		"ZZ":  "Unknown Region",
	}
	src := map[string]string{
		"150": "Avrupa",
		"AT":  "Avusturya",
		"BQ":  "Caribbean Netherlands",
		"CW":  "Curaçao",
		"DE":  "Almanya",
		"EU":  "Avrupa Birliği",
		"TR":  "Türkiye",
		"ZZ":  "Bilinmeyen Bölge",
	}

	loc, err := Build("tr", src, base, Options{})
	require.NoError(t, err)
	require.Equal(t, "tr", loc.ID)
	require.Nil(t, loc.Sorted)
	require.Nil(t, loc.Likely)
	require.NotContains(t, loc.Names, "BQ")
	require.Equal(t, "Almanya", loc.Names["DE"])
	require.Len(t, loc.Names, 6)

	loc, err = Build("tr", src, base, Options{Curated: true, Likely: []string{"TR"}})
	require.NoError(t, err)
	require.Equal(t, []string{"DE", "AT", "BQ", "CW", "TR"}, loc.Sorted)
	require.Equal(t, []string{"TR"}, loc.Likely)

	loc, err = Build("tr", src, base, Options{Curated: true, BaseFirst: true})
	require.NoError(t, err)
	require.Equal(t, []string{"BQ", "CW", "DE", "AT", "TR"}, loc.Sorted)
	require.Nil(t, loc.Likely)

	loc, err = Build("en", base, nil, Options{})
	require.NoError(t, err)
	require.Equal(t, base, loc.Names)
	require.Equal(t, []string{"AT", "BQ", "CW", "DE", "TR"}, loc.Sorted)

	// the result must load
	_, err = regionnames.Load(map[string]*cldr.Locale{"en": loc}, "en")
	require.NoError(t, err)
}

func TestBuildChild(t *testing.T) {
	base := map[string]string{
		"BJ": "Benin",
		"GH": "Ghana",
		"NG": "Nigeria",
		"ZZ": "Unknown Region",
	}
	yo := map[string]string{
		"BJ": "Orílẹ́ède Bẹ̀nẹ̀",
		"GH": "Orílẹ́ède Gana",
		"NG": "Orílẹ́ède Nàìjíríà",
		"ZZ": "Agbègbè tí a kò mọ̀",
	}
	parentLoc, err := Build("yo", yo, base, Options{})
	require.NoError(t, err)
	baseLoc, err := Build("en", base, nil, Options{})
	require.NoError(t, err)

	// GH equals the base name, but differs from the parent name
	src := map[string]string{
		"BJ": "Orílẹ́ède Bẹ̀nẹ̀",
		"GH": "Ghana",
		"NG": "Nàìjíríà BJ",
		"ZZ": "Agbègbè tí a kò mọ̀",
	}
	parent := make(map[string]string)
	for code, name := range base {
		parent[code] = name
	}
	for code, name := range yo {
		parent[code] = name
	}

	loc, err := Build("yo_BJ", src, parent, Options{})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"GH": "Ghana", "NG": "Nàìjíríà BJ"}, loc.Names)

	registry, err := regionnames.Load(map[string]*cldr.Locale{
		"en":    baseLoc,
		"yo":    parentLoc,
		"yo_BJ": loc,
	}, "en")
	require.NoError(t, err)
	for code, name := range src {
		require.Equal(t, name, registry.DisplayName("yo_BJ", regionnames.RegionCode(code)), code)
	}
	require.Equal(t, "Orílẹ́ède Gana", registry.DisplayName("yo", "GH"))
}

func TestBuildInvalid(t *testing.T) {
	base := map[string]string{"DE": "Germany", "ZZ": "Unknown Region"}
	tests := map[string]struct {
		id     string
		src    map[string]string
		likely []string
	}{
		"bad id":      {"", map[string]string{"DE": "Deutschland"}, nil},
		"bad code":    {"de", map[string]string{"de": "Deutschland"}, nil},
		"empty name":  {"de", map[string]string{"DE": " "}, nil},
		"not in base": {"de", map[string]string{"AT": "Österreich"}, nil},
		"bad likely":  {"de", map[string]string{"DE": "Deutschland"}, []string{"deu"}},
	}
	for name, test := range tests {
		_, err := Build(test.id, test.src, base, Options{Likely: test.likely})
		require.Error(t, err, name)
	}
}

func TestIdent(t *testing.T) {
	require.Equal(t, "yoBJ", Ident("yo_BJ"))
	require.Equal(t, "gsw", Ident("gsw"))
	require.Equal(t, "srLatnRS", Ident("sr_Latn_RS"))
	require.Equal(t, "yo_bj.go", FileName("yo_BJ"))
}

// The checked-in data files are exactly what Write produces.
func TestWriteMatchesDataFiles(t *testing.T) {
	for id, loc := range cldr.Locales {
		want, err := os.ReadFile(filepath.Join("..", "cldr", FileName(id)))
		require.NoError(t, err, id)

		var buf bytes.Buffer
		require.NoError(t, Write(&buf, loc), id)
		require.Equal(t, string(want), buf.String(), id)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, &cldr.Locale{
		ID:     "de_CH",
		Names:  map[string]string{"756": "Eidgenossenschaft", "CH": "Schweiz", "DE": "Deutschland"},
		Sorted: []string{"DE", "CH"},
		Likely: []string{"CH", "LI"},
	})
	require.NoError(t, err)
	require.Equal(t, `// Code generated by "regionnames generate"; DO NOT EDIT.

package cldr

func init() {
	register("de_CH", deCHNames, deCHSorted, deCHLikely)
}

var deCHNames = map[string]string{
	"756": "Eidgenossenschaft",

	"CH": "Schweiz",
	"DE": "Deutschland",
}

var deCHSorted = []string{
	"DE", "CH",
}

var deCHLikely = []string{"CH", "LI"}
`, buf.String())
}
