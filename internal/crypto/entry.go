package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"passkeep/internal/domain"
)

// Overhead is the AEAD tag size appended to every ciphertext.
const Overhead = chacha20poly1305.Overhead

const adPrefix = "passkeep/v1"

// Seal encrypts value for the entry addressed by token under a fresh random
// nonce. The token is bound as associated data, so the record only opens
// under the same token.
func (k *MasterKey) Seal(token domain.EntryToken, value string) (domain.EntryRecord, error) {
	if len(value) > MaxValueLength {
		return domain.EntryRecord{}, fmt.Errorf("value too large: %d bytes", len(value))
	}
	pt := []byte(value)
	defer Wipe(pt)
	return k.seal(associatedData(token), pt)
}

// Open authenticates and decrypts rec for token. Any failure (tag, token
// binding or padding) yields domain.ErrAuthentication and no plaintext.
func (k *MasterKey) Open(token domain.EntryToken, rec domain.EntryRecord) (string, error) {
	pt, err := k.open(associatedData(token), rec)
	if err != nil {
		return "", fmt.Errorf("token %s: %w", token.Short(), err)
	}
	defer Wipe(pt)
	return string(pt), nil
}

// seal pads plaintext and encrypts it under the entry subkey with ad bound.
func (k *MasterKey) seal(ad, plaintext []byte) (domain.EntryRecord, error) {
	key, err := k.subkey(entryKeyInfo)
	if err != nil {
		return domain.EntryRecord{}, err
	}
	defer Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return domain.EntryRecord{}, err
	}
	var nonce domain.Nonce
	if _, err := rand.Read(nonce[:]); err != nil {
		return domain.EntryRecord{}, fmt.Errorf("generate nonce: %w", err)
	}

	padded := Pad(plaintext)
	defer Wipe(padded)

	ct := aead.Seal(nil, nonce[:], padded, ad)
	return domain.EntryRecord{Nonce: nonce, Ciphertext: ct}, nil
}

// open reverses seal. The returned plaintext must be wiped by the caller.
// Authentication and padding failures wrap domain.ErrAuthentication.
func (k *MasterKey) open(ad []byte, rec domain.EntryRecord) ([]byte, error) {
	key, err := k.subkey(entryKeyInfo)
	if err != nil {
		return nil, err
	}
	defer Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	padded, err := aead.Open(nil, rec.Nonce[:], rec.Ciphertext, ad)
	if err != nil {
		return nil, domain.ErrAuthentication
	}
	defer Wipe(padded)

	value, err := Unpad(padded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthentication, err)
	}
	return append([]byte(nil), value...), nil
}

func associatedData(token domain.EntryToken) []byte {
	ad := make([]byte, 0, len(adPrefix)+domain.TokenSize)
	ad = append(ad, adPrefix...)
	return append(ad, token[:]...)
}
