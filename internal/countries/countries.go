// Package countries translates ISO 3166-1 country codes between their
// two-letter and three-letter forms, backed by the reference tables of
// github.com/biter777/countries.
package countries

import (
	"errors"
	"fmt"
	"strings"

	countrydb "github.com/biter777/countries"
)

// ErrUnknownCountryCode reports a two-letter code the reference
// database does not carry.
var ErrUnknownCountryCode = errors.New("countries: unknown country code")

// Alpha2ToAlpha3 converts a two-letter code to its three-letter form.
// An unknown code is an error, never a fallback value.
func Alpha2ToAlpha3(alpha2 string) (string, error) {
	c := countrydb.ByName(strings.ToUpper(strings.TrimSpace(alpha2)))
	if c == countrydb.Unknown {
		return "", fmt.Errorf("%w: %q", ErrUnknownCountryCode, alpha2)
	}
	return c.Alpha3(), nil
}

// NameAndAlpha3 returns the display name and three-letter code for a
// two-letter code. ok is false when the code is unknown.
func NameAndAlpha3(alpha2 string) (name, alpha3 string, ok bool) {
	c := countrydb.ByName(strings.ToUpper(strings.TrimSpace(alpha2)))
	if c == countrydb.Unknown {
		return "", "", false
	}
	return c.String(), c.Alpha3(), true
}
