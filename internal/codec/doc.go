// Package codec converts keychain contents to and from the persisted vault
// document and computes the whole-vault checksum.
//
// # Format
//
// A vault is a single compact JSON object:
//
//	{
//	  "version": 1,
//	  "id":      "<store uuid>",
//	  "kdf":     {"algorithm": "pbkdf2-sha256", "iterations": 100000},
//	  "salt":    "<base64, 16 bytes>",
//	  "check":   {"nonce": "<base64>", "ciphertext": "<base64>"},
//	  "entries": [{"token": "<base64>", "nonce": "<base64>", "ciphertext": "<base64>"}]
//	}
//
// The check record is sealed under the store's key with its ID bound, so the
// keychain can tell a wrong password from an absent entry.
//
// Entries are sorted by token bytes and fields are emitted in a fixed order,
// so encoding the same logical content always yields the same bytes and the
// same checksum. The checksum (SHA-256 of those bytes) is returned beside the
// document and never embedded in it.
package codec
