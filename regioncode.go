package regionnames

import (
	"errors"
	"fmt"
	"strings"
)

// RegionCode is an ISO 3166 alpha-2 country code, a UN M.49 numeric area code
// like "419" or a special token like "EU" or "ZZ".
type RegionCode string

// Unknown is the code of the unknown region. Every locale names it.
const Unknown RegionCode = "ZZ"

// ErrInvalidRegionCode is returned if a string is not a region code.
var ErrInvalidRegionCode = errors.New("invalid region code")

// tokens are alpha-2 codes which name a group or pseudo region instead of a country
var tokens = map[RegionCode]struct{}{
	"EU": {},
	"EZ": {},
	"QO": {},
	"UN": {},
	"ZZ": {},
}

// ParseRegionCode trims s, converts it to upper case and checks the syntax.
func ParseRegionCode(s string) (RegionCode, error) {
	code := RegionCode(strings.ToUpper(strings.TrimSpace(s)))
	if !code.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRegionCode, s)
	}
	return code, nil
}

// Valid reports whether c consists of two upper case ASCII letters or three ASCII digits.
func (c RegionCode) Valid() bool {
	switch len(c) {
	case 2:
		return isUpperAlpha(c[0]) && isUpperAlpha(c[1])
	case 3:
		return isDigit(c[0]) && isDigit(c[1]) && isDigit(c[2])
	default:
		return false
	}
}

// IsNumeric reports whether c is a UN M.49 area code.
func (c RegionCode) IsNumeric() bool {
	return len(c) == 3 && c.Valid()
}

// IsCountry reports whether c denotes a single country or territory, which is
// what a country picker shows.
func (c RegionCode) IsCountry() bool {
	if len(c) != 2 || !c.Valid() {
		return false
	}
	_, isToken := tokens[c]
	return !isToken
}

func (c RegionCode) String() string {
	return string(c)
}

func isDigit(sym uint8) bool {
	return sym >= '0' && sym <= '9'
}

func isUpperAlpha(sym uint8) bool {
	return sym >= 'A' && sym <= 'Z'
}
