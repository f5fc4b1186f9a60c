package crypto

// NewMasterKeyForTest wraps raw key bytes without running a KDF.
func NewMasterKeyForTest(raw []byte) *MasterKey {
	return newMasterKey(append([]byte(nil), raw...))
}
