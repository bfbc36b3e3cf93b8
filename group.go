package regionnames

import "golang.org/x/exp/slices"

// EU member states. Greece is "GR" here, not "EL" as in EU documents.
var euMembers = []RegionCode{"AT", "BE", "BG", "CY", "CZ", "DE", "DK", "EE", "ES", "FI", "FR", "GR", "HR", "HU", "IE", "IT", "LT", "LU", "LV", "MT", "NL", "PL", "PT", "RO", "SE", "SI", "SK"}

// countries which use the euro as EU members
var ezMembers = []RegionCode{"AT", "BE", "CY", "DE", "EE", "ES", "FI", "FR", "GR", "HR", "IE", "IT", "LT", "LU", "LV", "MT", "NL", "PT", "SI", "SK"}

var groups = map[RegionCode][]RegionCode{
	"EU": euMembers,
	"EZ": ezMembers,
}

// Members returns the member countries of the group "EU" or "EZ" in ascending
// order. It returns nil for other codes.
func Members(group RegionCode) []RegionCode {
	members, ok := groups[group]
	if !ok {
		return nil
	}
	return append([]RegionCode(nil), members...)
}

// Contains reports whether code is a member of group.
func Contains(group, code RegionCode) bool {
	return slices.Contains(groups[group], code)
}

// Filter returns the entries whose code is a member of group, keeping their order.
func Filter(entries []Entry, group RegionCode) []Entry {
	var result []Entry
	for _, e := range entries {
		if Contains(group, e.Code) {
			result = append(result, e)
		}
	}
	return result
}
