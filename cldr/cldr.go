// Package cldr holds region display names taken from the territory data of
// the Unicode Common Locale Data Repository.
//
// Apart from this file, the package is generated by "regionnames generate".
// Every locale file carries only the names that differ from the base locale,
// optionally a curated display order and a list of likely regions.
package cldr

// Base is the locale which names every known region code.
const Base = "en"

// Locale is the generated data of a single locale.
type Locale struct {
	ID     string
	Names  map[string]string // region code => localized name
	Sorted []string          // display order, nil if inherited
	Likely []string
}

// Locales contains all generated locales by ID.
var Locales = map[string]*Locale{}

func register(id string, names map[string]string, sorted, likely []string) {
	Locales[id] = &Locale{
		ID:     id,
		Names:  names,
		Sorted: sorted,
		Likely: likely,
	}
}
