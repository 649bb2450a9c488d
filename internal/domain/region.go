package domain

import "strings"

// Region is an optional area code sent to the NWS API as the "area" parameter.
// The zero value means no filter.
type Region string

// ParseRegion trims and uppercases free-text input. No format validation is
// done locally; the API decides whether the code is valid.
func ParseRegion(input string) Region {
	return Region(strings.ToUpper(strings.TrimSpace(input)))
}

// IsSet reports whether the region filters the request.
func (r Region) IsSet() bool {
	return r != ""
}

func (r Region) String() string {
	return string(r)
}
