package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/hkdf"
)

// HKDF info strings separating the subkeys.
const (
	nameKeyInfo  = "passkeep name v1"
	entryKeyInfo = "passkeep entry v1"
)

var errKeyDestroyed = errors.New("master key destroyed")

// MasterKey is the 256-bit key derived from the master password. The raw
// bytes live in a memguard enclave and are only exposed inside this package.
type MasterKey struct {
	enclave *memguard.Enclave
}

// newMasterKey seals raw into an enclave. raw is wiped.
func newMasterKey(raw []byte) *MasterKey {
	return &MasterKey{enclave: memguard.NewEnclave(raw)}
}

// Destroy drops the enclave. Later operations fail.
func (k *MasterKey) Destroy() {
	k.enclave = nil
}

// subkey expands the master key with HKDF-SHA256 under info. The caller
// must Wipe the result.
func (k *MasterKey) subkey(info string) ([]byte, error) {
	if k == nil || k.enclave == nil {
		return nil, errKeyDestroyed
	}
	lb, err := k.enclave.Open()
	if err != nil {
		return nil, fmt.Errorf("open master key: %w", err)
	}
	defer lb.Destroy()

	out := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, lb.Bytes(), nil, []byte(info)), out); err != nil {
		Wipe(out)
		return nil, fmt.Errorf("expand %q subkey: %w", info, err)
	}
	return out, nil
}
