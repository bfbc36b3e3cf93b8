package regionnames

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// NameTable maps region codes to localized display names.
type NameTable map[RegionCode]string

// Merge returns a new table which contains all entries of base, overlaid by
// the entries of overlay. Keys are compared exactly, so "us" does not replace
// "US". Neither input is modified.
func Merge(base, overlay NameTable) NameTable {
	merged := make(NameTable, len(base)+len(overlay))
	for code, name := range base {
		merged[code] = name
	}
	for code, name := range overlay {
		merged[code] = name
	}
	return merged
}

// Lookup returns the name of code and whether it exists.
func (t NameTable) Lookup(code RegionCode) (string, bool) {
	name, ok := t[code]
	return name, ok
}

// Codes returns the keys of t in ascending order.
func (t NameTable) Codes() []RegionCode {
	codes := maps.Keys(t)
	slices.Sort(codes)
	return codes
}

// Clone returns a copy of t.
func (t NameTable) Clone() NameTable {
	return maps.Clone(t)
}

func tableFromStrings(m map[string]string) NameTable {
	t := make(NameTable, len(m))
	for code, name := range m {
		t[RegionCode(code)] = name
	}
	return t
}

func codesFromStrings(s []string) []RegionCode {
	if s == nil {
		return nil
	}
	codes := make([]RegionCode, len(s))
	for i := range s {
		codes[i] = RegionCode(s[i])
	}
	return codes
}
