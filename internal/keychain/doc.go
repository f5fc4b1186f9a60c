/*
Package keychain implements a password-protected credential store.

A Keychain maps entry names (for example a site's domain) to secret string
values. It is created fresh with Init or restored from a serialized vault
with Load, and serialized again with Dump. Persisting the vault, and keeping
its checksum somewhere the caller trusts, is left to the caller.

# Encryption

The master key is derived from the password and a random 16-byte salt with
PBKDF2-HMAC-SHA256 (100,000 iterations) by default; Argon2id and scrypt are
available through WithKDF. The algorithm and its cost are recorded in the
vault so Load can re-derive the same key.

Each entry is stored under a token, the HMAC-SHA256 of its name, so names
are not recoverable from the vault. Values are padded to a multiple of 64
bytes and sealed with ChaCha20-Poly1305 under a fresh random nonce, with the
token as associated data: moving a ciphertext to another entry's slot makes
it fail authentication.

# Integrity

Dump returns the vault together with its SHA-256 checksum. Passing that
checksum back to Load detects any modification of the vault, including
rollback to an older valid one, and fails with ErrIntegrity before anything
else happens.

# Errors

Get distinguishes three outcomes: the value (found), no such entry
(found == false, nil error), and ErrAuthentication.

The vault also holds a check record sealed under the entry key and bound to
the store ID. Load does not open it, so it costs nothing until a name is
used; the first Get, Has, Set, Remove or Fingerprint opens it once, and a
wrong password then fails that call and every later one with
ErrAuthentication, whether or not the name exists. Set never writes under a
key that failed the check.
*/
package keychain
