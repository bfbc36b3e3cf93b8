package regionnames

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dys2p/regionnames/cldr"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
)

// Registry holds the loaded locales.
type Registry struct {
	base    *Locale
	locales map[LocaleID]*Locale
	ids     []LocaleID // base first, then ascending
	sources map[string]*cldr.Locale
	matcher language.Matcher
}

// Load validates the given locale data and builds a registry from it. The
// parent of "ll_RR" is "ll" if it exists, the parent of all other locales is
// base.
func Load(src map[string]*cldr.Locale, base LocaleID) (*Registry, error) {
	if _, ok := src[string(base)]; !ok {
		return nil, fmt.Errorf("base locale %s not found", base)
	}

	// parents before children
	keys := maps.Keys(src)
	sort.Slice(keys, func(i, j int) bool {
		di, dj := strings.Count(keys[i], "_"), strings.Count(keys[j], "_")
		if di != dj {
			return di < dj
		}
		return keys[i] < keys[j]
	})

	r := &Registry{
		locales: make(map[LocaleID]*Locale, len(src)),
		sources: make(map[string]*cldr.Locale, len(src)),
	}

	r.base = newLocale(base, nil, tableFromStrings(src[string(base)].Names), codesFromStrings(src[string(base)].Sorted), codesFromStrings(src[string(base)].Likely))
	if err := validate(r.base); err != nil {
		return nil, err
	}
	if _, ok := r.base.names[Unknown]; !ok {
		return nil, fmt.Errorf("base locale %s does not name the unknown region %s", base, Unknown)
	}
	r.locales[base] = r.base

	for _, key := range keys {
		id := LocaleID(key)
		if id == base {
			continue
		}
		if parsed, err := ParseLocaleID(key); err != nil || parsed != id {
			return nil, fmt.Errorf("locale id %q is not in canonical form", key)
		}
		parent := r.base
		for p := id.Parent(); p != ""; p = p.Parent() {
			if l, ok := r.locales[p]; ok {
				parent = l
				break
			}
		}
		data := src[key]
		l := newLocale(id, parent, tableFromStrings(data.Names), codesFromStrings(data.Sorted), codesFromStrings(data.Likely))
		if err := validate(l); err != nil {
			return nil, err
		}
		r.locales[id] = l
	}

	for key, data := range src {
		r.sources[key] = copySource(data)
	}

	r.ids = maps.Keys(r.locales)
	slices.Sort(r.ids)
	if i := slices.Index(r.ids, base); i > 0 {
		r.ids = append(append([]LocaleID{base}, r.ids[:i]...), r.ids[i+1:]...)
	}

	// the first tag is the fallback of the matcher
	tags := make([]language.Tag, len(r.ids))
	for i, id := range r.ids {
		tags[i] = id.Tag()
	}
	r.matcher = language.NewMatcher(tags)

	return r, nil
}

// MustLoad is like Load but panics if the data is invalid.
func MustLoad(src map[string]*cldr.Locale, base LocaleID) *Registry {
	r, err := Load(src, base)
	if err != nil {
		panic(err)
	}
	return r
}

func validate(l *Locale) error {
	for code, name := range l.overrides {
		if !code.Valid() {
			return fmt.Errorf("locale %s: %w: %q", l.id, ErrInvalidRegionCode, code)
		}
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("locale %s: empty name for %s", l.id, code)
		}
	}
	if l.curated {
		seen := make(map[RegionCode]struct{}, len(l.sorted))
		for _, code := range l.sorted {
			if _, dup := seen[code]; dup {
				return fmt.Errorf("locale %s: duplicate code %s in sort order", l.id, code)
			}
			seen[code] = struct{}{}
			if !l.Has(code) {
				return fmt.Errorf("locale %s: sort order contains %s which has no name", l.id, code)
			}
		}
	}
	for _, code := range l.likely {
		if !code.Valid() {
			return fmt.Errorf("locale %s: likely regions: %w: %q", l.id, ErrInvalidRegionCode, code)
		}
	}
	return nil
}

func copySource(data *cldr.Locale) *cldr.Locale {
	c := &cldr.Locale{
		ID:    data.ID,
		Names: maps.Clone(data.Names),
	}
	if data.Sorted != nil {
		c.Sorted = slices.Clone(data.Sorted)
	}
	if data.Likely != nil {
		c.Likely = slices.Clone(data.Likely)
	}
	return c
}

// Base returns the base locale.
func (r *Registry) Base() *Locale {
	return r.base
}

// IDs returns the IDs of all locales, the base locale first.
func (r *Registry) IDs() []LocaleID {
	return slices.Clone(r.ids)
}

// Lookup returns the locale with exactly the given ID.
func (r *Registry) Lookup(id LocaleID) (*Locale, bool) {
	l, ok := r.locales[id]
	return l, ok
}

// Locale returns the locale with the given ID or its nearest registered
// ancestor. Unknown and malformed IDs yield the base locale.
func (r *Registry) Locale(id LocaleID) *Locale {
	if l, ok := r.locales[id]; ok {
		return l
	}
	parsed, err := ParseLocaleID(string(id))
	if err != nil {
		return r.base
	}
	for p := parsed; p != ""; p = p.Parent() {
		if l, ok := r.locales[p]; ok {
			return l
		}
	}
	return r.base
}

// Match returns the locale which fits the preferences best. Preferences are
// language tags or Accept-Language header values. If nothing matches, the
// base locale is returned.
func (r *Registry) Match(preferences ...string) *Locale {
	_, index := language.MatchStrings(r.matcher, preferences...)
	if index < 0 || index >= len(r.ids) {
		return r.base
	}
	return r.locales[r.ids[index]]
}

// Sources returns a copy of the data the registry was loaded from.
func (r *Registry) Sources() map[string]*cldr.Locale {
	result := make(map[string]*cldr.Locale, len(r.sources))
	for key, data := range r.sources {
		result[key] = copySource(data)
	}
	return result
}

// DisplayName returns the name of code in the given locale. See Locale.DisplayName.
func (r *Registry) DisplayName(id LocaleID, code RegionCode) string {
	return r.Locale(id).DisplayName(code)
}

// SortedRegionCodes returns the display order of the given locale.
func (r *Registry) SortedRegionCodes(id LocaleID) []RegionCode {
	return r.Locale(id).SortedRegionCodes()
}

// LikelyRegionCodes returns the likely regions of the given locale. They are
// not inherited, so most locales return nil.
func (r *Registry) LikelyRegionCodes(id LocaleID) []RegionCode {
	return r.Locale(id).LikelyRegionCodes()
}
