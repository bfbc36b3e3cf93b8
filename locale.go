package regionnames

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by strict lookups if no table in the parent chain names a region.
var ErrNotFound = errors.New("region name not found")

// Entry is a region code with its display name, as shown in a country picker.
type Entry struct {
	Code RegionCode `json:"code"`
	Name string     `json:"name"`
}

// A Locale holds the region names of one locale. Its own names are laid over
// the names of its parent, so lookups fall through to the parent and finally
// to the base locale.
//
// A Locale is immutable after loading and can be used concurrently.
type Locale struct {
	id        LocaleID
	parent    *Locale
	overrides NameTable // own entries
	names     NameTable // effective entries, including inherited ones
	sorted    []RegionCode
	curated   bool // sorted is the locale's own order
	likely    []RegionCode
}

func newLocale(id LocaleID, parent *Locale, overrides NameTable, sorted, likely []RegionCode) *Locale {
	l := &Locale{
		id:        id,
		parent:    parent,
		overrides: overrides,
		likely:    likely,
	}
	switch {
	case sorted != nil:
		l.sorted = sorted
		l.curated = true
	case parent != nil:
		l.sorted = parent.sorted
	}
	if parent != nil {
		l.names = Merge(parent.names, overrides)
	} else {
		l.names = overrides.Clone()
	}
	return l
}

// ID returns the ID of the locale.
func (l *Locale) ID() LocaleID {
	return l.id
}

// Parent returns the locale the names are inherited from, or nil for the base locale.
func (l *Locale) Parent() *Locale {
	return l.parent
}

// Name returns the name of code. If neither the locale nor one of its
// ancestors names the code, it returns an error wrapping ErrNotFound.
func (l *Locale) Name(code RegionCode) (string, error) {
	if name, ok := l.names[code]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: %s in locale %s", ErrNotFound, code, l.id)
}

// DisplayName returns the name of code. Codes without a name are displayed as
// the unknown region. If even that has no name, the code itself is returned.
func (l *Locale) DisplayName(code RegionCode) string {
	if name, ok := l.names[code]; ok {
		return name
	}
	if name, ok := l.names[Unknown]; ok {
		return name
	}
	return string(code)
}

// Has reports whether code has a name in the locale or one of its ancestors.
func (l *Locale) Has(code RegionCode) bool {
	_, ok := l.names[code]
	return ok
}

// Names returns a copy of the effective name table.
func (l *Locale) Names() NameTable {
	return l.names.Clone()
}

// Overrides returns a copy of the names defined by the locale itself.
func (l *Locale) Overrides() NameTable {
	return l.overrides.Clone()
}

// SortedRegionCodes returns the display order of the locale. Locales without
// a curated order inherit the order of their nearest ancestor which has one.
func (l *Locale) SortedRegionCodes() []RegionCode {
	return append([]RegionCode(nil), l.sorted...)
}

// Curated reports whether the display order is defined by the locale itself.
func (l *Locale) Curated() bool {
	return l.curated
}

// LikelyRegionCodes returns the regions where the language of the locale is
// most likely spoken. Most locales don't define any, then it returns nil.
func (l *Locale) LikelyRegionCodes() []RegionCode {
	if l.likely == nil {
		return nil
	}
	return append([]RegionCode(nil), l.likely...)
}

// Entries returns the display order of the locale along with the names.
func (l *Locale) Entries() []Entry {
	entries := make([]Entry, len(l.sorted))
	for i, code := range l.sorted {
		entries[i] = Entry{
			Code: code,
			Name: l.DisplayName(code),
		}
	}
	return entries
}
