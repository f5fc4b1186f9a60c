package domain

// MaxNameLength is the longest entry name accepted, in runes.
const MaxNameLength = 64

// EntryRecord is the authenticated encryption of one entry's padded value.
// Ciphertext carries the AEAD tag.
type EntryRecord struct {
	Nonce      Nonce
	Ciphertext []byte
}

// Clone returns a deep copy of r.
func (r EntryRecord) Clone() EntryRecord {
	return EntryRecord{Nonce: r.Nonce, Ciphertext: append([]byte(nil), r.Ciphertext...)}
}

// TokenRecord pairs a record with the token it is stored under.
type TokenRecord struct {
	Token  EntryToken
	Record EntryRecord
}
