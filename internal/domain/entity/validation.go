package entity

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	// Exactly one "@"; alphanumeric local part with optional single . _ -
	// separators between runs; dot-separated domain labels with a TLD of at
	// least two letters and no underscore anywhere in the domain.
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9]+([._-]?[a-zA-Z0-9]+)*@[a-zA-Z0-9]+([.-]?[a-zA-Z0-9]+)*(\.[a-zA-Z]{2,})+$`)

	// Lowercase alphanumeric and underscore, length >= 8, no leading
	// underscore. Dots and hyphens are excluded by the character class.
	usernamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_]{7,}$`)
)

// ValidatePositiveInteger checks that every raw value parses as an integer
// strictly greater than zero. Floats, non-numeric strings, negatives and
// zero are all rejected; the failure message embeds the offending literal.
func ValidatePositiveInteger(values ...string) error {
	for _, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return InvalidParam(v)
		}
	}
	return nil
}

// ValidateEmail checks the shape of an email address. Leading and trailing
// whitespace is trimmed before matching.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateUsername checks the username shape: lowercase alphanumeric plus
// underscore, at least eight characters, not starting with an underscore.
func ValidateUsername(username string) error {
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

// ValidatePassword requires at least one lowercase letter, one uppercase
// letter, one digit, and a minimum length of eight characters.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrInvalidPassword
	}
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !lower || !upper || !digit {
		return ErrInvalidPassword
	}
	return nil
}
