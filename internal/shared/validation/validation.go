// Package validation holds the business rules that cannot be expressed as
// binding tags. Everything here is pure: the caller supplies the reference
// date, so results are reproducible in tests.
package validation

import (
	"regexp"
	"strings"
	"time"
)

const (
	MinAge = 18
	MaxAge = 65
)

var (
	phoneDigits     = regexp.MustCompile(`^[0-9]{10,15}$`)
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// AgeAt returns the whole years between dob and today. A birthday not yet
// reached this year does not count as a full year.
func AgeAt(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() ||
		(today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}

// ValidAge reports whether the age derived from dob lies in [MinAge, MaxAge].
func ValidAge(dob, today time.Time) bool {
	age := AgeAt(dob, today)
	return age >= MinAge && age <= MaxAge
}

// ValidPhone accepts an empty value (phone is optional) or 10-15 digits
// after stripping spaces, dashes and parentheses.
func ValidPhone(phone string) bool {
	if phone == "" {
		return true
	}
	return phoneDigits.MatchString(phoneSeparators.Replace(phone))
}
