package crypto

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"

	"passkeep/internal/domain"
)

const checkPrefix = "passkeep/v1 check"

// checkPlaintext is the known content of every password-check record.
var checkPlaintext = []byte("passkeep password check")

// SealCheck returns a password-check record for the store id. It opens only
// under the key that sealed it.
func (k *MasterKey) SealCheck(id uuid.UUID) (domain.EntryRecord, error) {
	return k.seal(checkData(id), checkPlaintext)
}

// OpenCheck verifies a record made by SealCheck for id. A wrong key, another
// store's record or a modified one yields domain.ErrAuthentication.
func (k *MasterKey) OpenCheck(id uuid.UUID, rec domain.EntryRecord) error {
	pt, err := k.open(checkData(id), rec)
	if err != nil {
		return fmt.Errorf("password check: %w", err)
	}
	defer Wipe(pt)
	if !bytes.Equal(pt, checkPlaintext) {
		return fmt.Errorf("%w: password check content", domain.ErrAuthentication)
	}
	return nil
}

func checkData(id uuid.UUID) []byte {
	ad := make([]byte, 0, len(checkPrefix)+len(id))
	ad = append(ad, checkPrefix...)
	return append(ad, id[:]...)
}
