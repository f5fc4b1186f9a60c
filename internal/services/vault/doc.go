// Package vault runs keychain operations against a vault on disk.
//
// It loads the vault through a domain.VaultStore, checks it against the
// checksum held by a domain.ChecksumLedger, applies one operation and saves
// the result, recording the new checksum. Operations can be written to an
// audit log.
package vault
