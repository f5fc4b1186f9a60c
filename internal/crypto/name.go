package crypto

import (
	"crypto/hmac"
	"crypto/sha256"

	"passkeep/internal/domain"
)

// Token returns the entry token for name: HMAC-SHA256 under the name subkey.
// Equal names map to equal tokens under the same key; without the key the
// mapping can be neither inverted nor forged.
func (k *MasterKey) Token(name string) (domain.EntryToken, error) {
	var t domain.EntryToken
	key, err := k.subkey(nameKeyInfo)
	if err != nil {
		return t, err
	}
	defer Wipe(key)

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(name))
	copy(t[:], mac.Sum(nil))
	return t, nil
}
