// Package store holds keychain entries in memory and persists serialized
// vaults to disk for the host application.
//
// Entries is the in-memory mapping from entry token to encrypted record. It
// performs no I/O and no cryptography.
//
// The file-backed types implement the domain persistence interfaces:
//   - Vault blobs (FileStore), written atomically with mode 0600
//   - The checksum ledger (Ledger), the trusted record of the latest
//     checksum per store ID, kept apart from the vault itself
//
// All methods are concurrency-safe via internal locking.
package store
