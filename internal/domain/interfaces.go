package domain

import "github.com/google/uuid"

// VaultStore persists serialized store blobs for the host application.
type VaultStore interface {
	SaveVault(blob []byte) error
	LoadVault() (blob []byte, ok bool, err error)
}

// ChecksumLedger is the trusted channel holding the latest checksum per store.
type ChecksumLedger interface {
	RecordChecksum(id uuid.UUID, sum Checksum) error
	ExpectedChecksum(id uuid.UUID) (Checksum, bool, error)
}

// VaultInfo describes a persisted vault without unlocking it.
type VaultInfo struct {
	ID       uuid.UUID
	KDF      KDFParams
	Entries  int
	Checksum Checksum
	// Verified reports that the vault matched a checksum in the ledger.
	Verified bool
}

// VaultService runs keychain operations against a persisted vault. Every
// call that takes a password unlocks the vault, and every call that
// changes it saves the vault and records the new checksum.
type VaultService interface {
	Create(password string) (uuid.UUID, error)
	Set(password, name, value string) (replaced bool, err error)
	Get(password, name string) (value string, found bool, err error)
	Remove(password, name string) (removed bool, err error)
	Inspect() (VaultInfo, error)
	Verify() (VaultInfo, error)
}
