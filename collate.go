package regionnames

import (
	"sort"

	"golang.org/x/text/collate"
)

// Collated returns the given codes with their display names, sorted by name
// in the collation order of the locale. Diacritics and case are ignored on
// the first comparison level. If codes is nil, all countries are sorted.
func (l *Locale) Collated(codes []RegionCode) []Entry {
	if codes == nil {
		for _, code := range l.names.Codes() {
			if code.IsCountry() {
				codes = append(codes, code)
			}
		}
	}
	result := make([]Entry, len(codes))
	for i, code := range codes {
		result[i].Code = code
		result[i].Name = l.DisplayName(code)
	}
	// a Collator must not be shared between goroutines
	collator := collate.New(l.id.Tag(), collate.Loose)
	sort.SliceStable(result, func(i, j int) bool {
		return collator.CompareString(result[i].Name, result[j].Name) < 0
	})
	return result
}
