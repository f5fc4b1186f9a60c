// Package crypto implements the cryptographic leaves of the keychain.
//
// Contents
//
//   - Password-based key derivation (DeriveMasterKey) with PBKDF2-HMAC-SHA256
//     as the default and Argon2id or scrypt as alternatives
//   - The in-memory MasterKey, kept in a memguard enclave and expanded with
//     HKDF-SHA256 into independent name and entry subkeys
//   - Entry tokens (MasterKey.Token): HMAC-SHA256 of the entry name
//   - Entry encryption (MasterKey.Seal / MasterKey.Open): ChaCha20-Poly1305
//     with a fresh random nonce and the entry token as associated data
//   - Length-hiding padding of values to PadBlockSize (Pad, Unpad)
//   - Best-effort wiping of transient secrets (Wipe)
//
// # Notes
//
// The master key is never used directly. Every operation opens the enclave
// into a locked buffer, derives the subkey it needs and destroys both before
// returning.
package crypto
