package vault

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// minPassphraseLength defines the minimum number of characters a
// passphrase should have.
const minPassphraseLength = 12

// ErrWeakPassphrase is returned by CheckPassphrase when the passphrase fails
// the strength policy.
var ErrWeakPassphrase = fmt.Errorf(
	"passphrase is weak (should be at least %d characters and include upper, lower, "+
		"number, and symbol)",
	minPassphraseLength,
)

// CheckPassphrase applies a basic strength policy. Key derivation accepts
// any password, so callers use this to warn rather than refuse.
func CheckPassphrase(passphrase string) error {
	if !isSecurePassphrase(passphrase) {
		return ErrWeakPassphrase
	}
	return nil
}

func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if utf8.RuneCountInString(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}
