package domain

import "errors"

// Errors surfaced by the keychain and its components. Callers match them
// with errors.Is; each is wrapped with context where it is raised.
//
// An absent entry is not an error: Get reports it with found == false.
var (
	// ErrKeyDerivation indicates malformed key derivation input (bad salt or
	// unsupported parameters). It never depends on the password.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrIntegrity indicates the blob does not match the trusted checksum:
	// it was tampered with or rolled back.
	ErrIntegrity = errors.New("store integrity check failed")

	// ErrFormat indicates a structurally malformed serialized store.
	ErrFormat = errors.New("malformed store")

	// ErrAuthentication indicates an entry failed AEAD verification: wrong
	// password, a swapped ciphertext, or corrupted padding.
	ErrAuthentication = errors.New("entry authentication failed")

	// ErrValidation indicates an unacceptable entry name.
	ErrValidation = errors.New("invalid entry name")

	// ErrClosed indicates the keychain was used after Close.
	ErrClosed = errors.New("keychain is closed")
)
