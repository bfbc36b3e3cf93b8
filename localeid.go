package regionnames

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// LocaleID identifies a locale in CLDR notation, like "am" or "yo_BJ".
type LocaleID string

// ErrInvalidLocaleID is returned if a string is not a well-formed language tag.
var ErrInvalidLocaleID = errors.New("invalid locale id")

// ParseLocaleID accepts CLDR ("yo_BJ") and BCP 47 ("yo-BJ") notation and
// returns the canonical CLDR form. Extensions and variants are dropped.
func ParseLocaleID(s string) (LocaleID, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidLocaleID, s, err)
	}
	base, script, region := tag.Raw()
	if base.String() == "und" {
		return "", fmt.Errorf("%w: %q has no language", ErrInvalidLocaleID, s)
	}
	parts := []string{base.String()}
	if script.String() != "Zzzz" {
		parts = append(parts, script.String())
	}
	if region.String() != "ZZ" {
		parts = append(parts, region.String())
	}
	return LocaleID(strings.Join(parts, "_")), nil
}

// Parent returns the ID without its last subtag, or the empty string for a bare language.
func (id LocaleID) Parent() LocaleID {
	if i := strings.LastIndexByte(string(id), '_'); i > 0 {
		return id[:i]
	}
	return ""
}

// BCP47 returns the ID with hyphens, as used in URLs and HTTP headers.
func (id LocaleID) BCP47() string {
	return strings.ReplaceAll(string(id), "_", "-")
}

// Tag converts the ID into a language tag. Malformed IDs yield language.Und.
func (id LocaleID) Tag() language.Tag {
	return language.Make(id.BCP47())
}

func (id LocaleID) String() string {
	return string(id)
}
