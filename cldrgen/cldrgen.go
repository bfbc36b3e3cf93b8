// Package cldrgen creates the data files of package cldr from CLDR territory
// names.
package cldrgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dys2p/regionnames"
	"github.com/dys2p/regionnames/cldr"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var ErrLocaleMissing = errors.New("locale not found in input")

// ReadTerritories reads the territory names of a locale from a cldr-json
// territories.json file. Alternative names like "GB-alt-short" are skipped.
func ReadTerritories(r io.Reader, locale string) (map[string]string, error) {
	var doc struct {
		Main map[string]struct {
			LocaleDisplayNames struct {
				Territories map[string]string `json:"territories"`
			} `json:"localeDisplayNames"`
		} `json:"main"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding territories: %w", err)
	}

	entry, ok := doc.Main[locale]
	if !ok {
		entry, ok = doc.Main[strings.ReplaceAll(locale, "_", "-")]
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocaleMissing, locale)
	}

	var result = make(map[string]string, len(entry.LocaleDisplayNames.Territories))
	for code, name := range entry.LocaleDisplayNames.Territories {
		if strings.Contains(code, "-alt-") {
			continue
		}
		result[code] = name
	}
	return result, nil
}

// FromDisplay takes the names of the given codes from the CLDR tables which
// are compiled into golang.org/x/text. Codes without a name are skipped.
func FromDisplay(tag language.Tag, codes []string) map[string]string {
	namer := display.Regions(tag)
	result := make(map[string]string, len(codes))
	for _, code := range codes {
		region, err := language.ParseRegion(code)
		if err != nil {
			continue
		}
		if name := namer.Name(region); name != "" {
			result[code] = name
		}
	}
	return result
}

// Options control which optional data Build derives.
type Options struct {
	// Curated creates a sort order. It is always created for base locales.
	Curated bool
	// BaseFirst puts the countries which keep their parent's name at the start
	// of the sort order, in code order. This suits locales whose script differs
	// from the script of the base locale. Otherwise all countries are collated.
	BaseFirst bool
	Likely    []string
}

// Build derives the data of a locale from its complete name table src. If
// parent is nil, the locale is a base locale and all names are kept. Otherwise
// parent is the effective table the locale is laid over, and only the names
// which differ from it are kept.
func Build(id string, src, parent map[string]string, opts Options) (*cldr.Locale, error) {
	localeID, err := regionnames.ParseLocaleID(id)
	if err != nil {
		return nil, err
	}

	var names = make(map[string]string)     // written to the file
	var countries = make(map[string]string) // all countries, for sorting
	var same []string                       // countries named like in parent
	for code, name := range src {
		if !regionnames.RegionCode(code).Valid() {
			return nil, fmt.Errorf("%s: %w: %q", id, regionnames.ErrInvalidRegionCode, code)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%s: empty name for %s", id, code)
		}
		if regionnames.RegionCode(code).IsCountry() {
			countries[code] = name
		}
		if parent != nil {
			parentName, ok := parent[code]
			if !ok {
				return nil, fmt.Errorf("%s: code %s is missing in parent", id, code)
			}
			if parentName == name {
				if regionnames.RegionCode(code).IsCountry() {
					same = append(same, code)
				}
				continue
			}
		}
		names[code] = name
	}

	for _, code := range opts.Likely {
		if !regionnames.RegionCode(code).Valid() {
			return nil, fmt.Errorf("%s: likely regions: %w: %q", id, regionnames.ErrInvalidRegionCode, code)
		}
	}

	result := &cldr.Locale{
		ID:    string(localeID),
		Names: names,
	}
	if len(opts.Likely) > 0 {
		result.Likely = slices.Clone(opts.Likely)
	}
	switch {
	case parent != nil && opts.Curated && opts.BaseFirst:
		for _, code := range same {
			delete(countries, code)
		}
		slices.Sort(same)
		result.Sorted = append(same, collated(localeID.Tag(), countries)...)
	case parent == nil || opts.Curated:
		result.Sorted = collated(localeID.Tag(), countries)
	}
	if result.Sorted == nil && (parent == nil || opts.Curated) {
		result.Sorted = []string{}
	}
	return result, nil
}

// collated returns the codes of names, sorted by name.
func collated(tag language.Tag, names map[string]string) []string {
	codes := maps.Keys(names)
	collator := collate.New(tag, collate.Loose)
	sort.Slice(codes, func(i, j int) bool {
		if c := collator.CompareString(names[codes[i]], names[codes[j]]); c != 0 {
			return c < 0
		}
		return codes[i] < codes[j]
	})
	return codes
}
