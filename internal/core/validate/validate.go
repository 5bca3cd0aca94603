// Package validate holds the pure credential checks run before any
// store access.
package validate

import (
	"regexp"
	"unicode"
)

// local-part@domain.tld shape: a single @, no whitespace, and at least
// one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether s has a plausible email shape.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Password reports whether s meets the strength rule: at least 8
// characters including a lowercase letter, an uppercase letter, and a
// digit. Any other characters are permitted.
func Password(s string) bool {
	var length int
	var lower, upper, digit bool
	for _, r := range s {
		length++
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return length >= 8 && lower && upper && digit
}
