package domain

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

const (
	SaltSize     = 16
	TokenSize    = 32
	NonceSize    = 12
	ChecksumSize = 32
)

// ------------- Salt -------------

// Salt is the non-secret KDF salt persisted alongside the store.
type Salt [SaltSize]byte

func (s Salt) Slice() []byte { return s[:] }

// SaltFromBytes copies b into a Salt.
func SaltFromBytes(b []byte) (Salt, error) {
	var out Salt
	if len(b) != SaltSize {
		return out, fmt.Errorf("salt: want %d bytes, got %d", SaltSize, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// ------------- EntryToken -------------

// EntryToken is the keyed digest of an entry name. It addresses the store
// and is bound into the entry's AEAD as associated data.
type EntryToken [TokenSize]byte

func (t EntryToken) Slice() []byte { return t[:] }

// Short returns a 16-char hex prefix for logs and audit lines.
func (t EntryToken) Short() string { return hex.EncodeToString(t[:8]) }

// TokenFromBytes copies b into an EntryToken.
func TokenFromBytes(b []byte) (EntryToken, error) {
	var out EntryToken
	if len(b) != TokenSize {
		return out, fmt.Errorf("entry token: want %d bytes, got %d", TokenSize, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// ------------- Nonce -------------

// Nonce is the per-entry AEAD nonce (96 bits).
type Nonce [NonceSize]byte

func (n Nonce) Slice() []byte { return n[:] }

// NonceFromBytes copies b into a Nonce.
func NonceFromBytes(b []byte) (Nonce, error) {
	var out Nonce
	if len(b) != NonceSize {
		return out, fmt.Errorf("nonce: want %d bytes, got %d", NonceSize, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// ------------- Checksum -------------

// Checksum is the SHA-256 digest of a serialized store.
type Checksum [ChecksumSize]byte

func (c Checksum) Slice() []byte { return c[:] }

// String returns the standard base64 form handed to callers.
func (c Checksum) String() string { return base64.StdEncoding.EncodeToString(c[:]) }

// IsZero reports whether c is the zero value.
func (c Checksum) IsZero() bool { return c == Checksum{} }

// ParseChecksum decodes the base64 form produced by String.
func ParseChecksum(s string) (Checksum, error) {
	var out Checksum
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("checksum: %w", err)
	}
	if len(b) != ChecksumSize {
		return out, fmt.Errorf("checksum: want %d bytes, got %d", ChecksumSize, len(b))
	}
	copy(out[:], b)
	return out, nil
}
