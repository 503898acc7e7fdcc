package logic

import (
	"strings"
	"unicode/utf8"
)

// Registration limits used by the undoing/redoing drills.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
	MinPasswordLength = 8
)

// ValidUsername reports whether name has between 3 and 20 characters.
func ValidUsername(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= MinUsernameLength && n <= MaxUsernameLength
}

// ValidEmail is a deliberately loose check: an "@" and a "." somewhere.
func ValidEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// ValidPassword reports whether password has at least 8 characters.
func ValidPassword(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}
