// Package regionnames provides localized display names of countries and
// regions, along with the order in which a country picker should list them.
//
// The names are taken from CLDR, see package cldr. Each locale defines only
// the names which differ from the base locale. Lookups fall through from the
// locale to its parent and to the base locale. Region codes without any name
// are displayed as the unknown region "ZZ".
package regionnames

import "github.com/dys2p/regionnames/cldr"

// Default contains all locales of package cldr.
var Default = MustLoad(cldr.Locales, cldr.Base)

// DisplayName returns the name of code in the given locale of the Default registry.
func DisplayName(locale LocaleID, code RegionCode) string {
	return Default.DisplayName(locale, code)
}

// SortedRegionCodes returns the display order of the given locale of the Default registry.
func SortedRegionCodes(locale LocaleID) []RegionCode {
	return Default.SortedRegionCodes(locale)
}

// LikelyRegionCodes returns the likely regions of the given locale of the Default registry.
func LikelyRegionCodes(locale LocaleID) []RegionCode {
	return Default.LikelyRegionCodes(locale)
}
