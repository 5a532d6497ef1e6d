// Package sample is a small demonstration corpus for the scanner.
// Every supported tag appears exactly once in this file, so scanning
// the package exercises the full tag set. The validation and calendar
// helpers are real; the auth functions are intentional placeholders.
package sample

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrUsernameRequired reports an empty username.
	ErrUsernameRequired = errors.New("username required")

	// ErrNotImplemented marks placeholder functionality with no real
	// behavior behind it.
	ErrNotImplemented = errors.New("not implemented")
)

// OPTIMIZE use a map once the list grows beyond a handful
var knownUsers = []string{"alice", "bob", "charlie"}

// Login is a placeholder for the login workflow.
// TODO implement login functionality
func Login() error {
	return fmt.Errorf("login: %w", ErrNotImplemented)
}

// Validate confirms a username is present. The rule is strictly
// non-empty: whitespace-only names pass.
// FIXME blank usernames still count as valid
func Validate(username string) error {
	if username == "" {
		return ErrUsernameRequired
	}
	return nil
}

// FakeAuth stands in where real authentication would be wired up.
// HACK bypassing auth for now
func FakeAuth() error {
	return fmt.Errorf("fake auth: %w", ErrNotImplemented)
}

// IsLeap reports whether a year is a leap year under the Gregorian
// rule: divisible by 4, except centuries not divisible by 400.
// BUG year zero predates the Gregorian calendar entirely
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Greet writes a greeting for name to w.
// NOTE this is a utility function
func Greet(w io.Writer, name string) {
	fmt.Fprintf(w, "Hello, %s\n", name)
}

// OldAuth is the retired authentication entry point.
// DEPRECATE use FakeAuth instead
func OldAuth() error {
	return fmt.Errorf("old auth: %w", ErrNotImplemented)
}
