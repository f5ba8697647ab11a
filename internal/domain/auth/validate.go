package auth

import (
	"strings"
	"unicode/utf8"
)

const (
	usernameMinLen   = 2
	usernameMaxLen   = 16
	passwordMinLen   = 8
	passwordMaxBytes = 72
)

// validateNewCredentials runs the syntactic registration rules in order and
// returns the first violation, or nil when the pair is acceptable. The
// uniqueness rule needs the store and lives in the orchestrator.
//
// Lengths count characters, not bytes; the password maximum is the one
// exception because bcrypt only reads the first 72 bytes of its input.
func validateNewCredentials(username, password string) *ValidationError {
	if strings.TrimSpace(username) != username {
		return newValidationError("Username or Password cannot have whitespace", "username")
	}
	if strings.TrimSpace(password) != password {
		return newValidationError("Username or Password cannot have whitespace", "password")
	}
	if utf8.RuneCountInString(username) < usernameMinLen {
		return newValidationError("Must be at least 2 characters long", "username")
	}
	if utf8.RuneCountInString(username) > usernameMaxLen {
		return newValidationError("Must be at most 16 characters long", "username")
	}
	if utf8.RuneCountInString(password) < passwordMinLen {
		return newValidationError("Must be at least 8 characters long", "password")
	}
	if len(password) > passwordMaxBytes {
		return newValidationError("Must be at most 72 characters long", "password")
	}
	return nil
}
