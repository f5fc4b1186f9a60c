package keychain

import (
	"crypto/subtle"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"passkeep/internal/codec"
	"passkeep/internal/crypto"
	"passkeep/internal/domain"
	"passkeep/internal/store"
)

// Re-exported so callers need not import domain for errors.Is checks.
var (
	ErrKeyDerivation  = domain.ErrKeyDerivation
	ErrIntegrity      = domain.ErrIntegrity
	ErrFormat         = domain.ErrFormat
	ErrAuthentication = domain.ErrAuthentication
	ErrValidation     = domain.ErrValidation
	ErrClosed         = domain.ErrClosed
)

// Keychain is an unlocked credential store. It is safe for concurrent use:
// Set, Remove and Close are exclusive, the rest may run in parallel.
type Keychain struct {
	mu      sync.RWMutex
	id      uuid.UUID
	kdf     domain.KDFParams
	salt    domain.Salt
	key     *crypto.MasterKey
	check   domain.EntryRecord
	entries *store.Entries
	log     Logger

	// The password check runs at most once, on first use of a name.
	checkOnce sync.Once
	checkErr  error
}

// Init creates an empty keychain protected by password, with a fresh salt
// and store ID.
func Init(password string, opts ...Option) (*Keychain, error) {
	o := newOptions(opts)

	salt, err := crypto.NewSalt()
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("generate store id: %w", err)
	}
	key, err := derive(o.log, password, salt, o.kdf)
	if err != nil {
		return nil, err
	}
	check, err := key.SealCheck(id)
	if err != nil {
		key.Destroy()
		return nil, fmt.Errorf("seal password check: %w", err)
	}

	o.log.Debugf("initialised store %s", id)
	k := &Keychain{
		id:      id,
		kdf:     o.kdf,
		salt:    salt,
		key:     key,
		check:   check,
		entries: store.NewEntries(),
		log:     o.log,
	}
	k.checkOnce.Do(func() {})
	return k, nil
}

// Load restores a keychain from a vault produced by Dump.
//
// If expected is non-empty it must be the checksum Dump returned, obtained
// through a channel the caller trusts; any mismatch fails with ErrIntegrity
// before the vault is parsed. An empty expected skips the check and so gives
// no rollback protection.
//
// A wrong password is not detected here: Load succeeds without decrypting
// anything, and the first Get, Has, Set, Remove or Fingerprint fails with
// ErrAuthentication, as does every one after it.
func Load(password string, blob []byte, expected string, opts ...Option) (*Keychain, error) {
	o := newOptions(opts)

	if expected != "" {
		if err := Verify(blob, expected); err != nil {
			return nil, err
		}
	} else {
		o.log.Debugf("loading vault without checksum verification")
	}

	doc, err := codec.Decode(blob)
	if err != nil {
		return nil, err
	}
	key, err := derive(o.log, password, doc.Salt, doc.KDF)
	if err != nil {
		return nil, err
	}

	o.log.Debugf("restored store %s with %d entries", doc.ID, len(doc.Entries))
	return &Keychain{
		id:      doc.ID,
		kdf:     doc.KDF,
		salt:    doc.Salt,
		key:     key,
		check:   doc.Check,
		entries: store.NewEntriesFrom(doc.Entries),
		log:     o.log,
	}, nil
}

// Verify checks blob against a checksum in the form Dump returns.
func Verify(blob []byte, expected string) error {
	want, err := domain.ParseChecksum(expected)
	if err != nil {
		return fmt.Errorf("%w: unreadable checksum: %v", ErrIntegrity, err)
	}
	got := codec.Sum(blob)
	if subtle.ConstantTimeCompare(got[:], want[:]) != 1 {
		return fmt.Errorf("%w: checksum mismatch", ErrIntegrity)
	}
	return nil
}

func derive(log Logger, password string, salt domain.Salt, p domain.KDFParams) (*crypto.MasterKey, error) {
	start := time.Now()
	key, err := crypto.DeriveMasterKey(password, salt.Slice(), p)
	if err != nil {
		return nil, err
	}
	log.Debugf("derived master key with %s in %s", p, time.Since(start).Round(time.Millisecond))
	return key, nil
}

// Set stores value under name, replacing any previous value.
func (k *Keychain) Set(name, value string) error {
	if err := validateName(name); err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.unlock(); err != nil {
		return err
	}
	tok, err := k.key.Token(name)
	if err != nil {
		return err
	}
	rec, err := k.key.Seal(tok, value)
	if err != nil {
		return fmt.Errorf("seal entry: %w", err)
	}
	k.entries.Set(tok, rec)
	return nil
}

// Get returns the value stored under name. An absent entry yields
// found == false and a nil error; a record that fails verification yields
// ErrAuthentication and never a value.
func (k *Keychain) Get(name string) (value string, found bool, err error) {
	if err := validateName(name); err != nil {
		return "", false, err
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	if err := k.unlock(); err != nil {
		return "", false, err
	}
	tok, err := k.key.Token(name)
	if err != nil {
		return "", false, err
	}
	rec, ok := k.entries.Get(tok)
	if !ok {
		return "", false, nil
	}
	value, err = k.key.Open(tok, rec)
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Has reports whether an entry exists under name without decrypting it.
func (k *Keychain) Has(name string) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	if err := k.unlock(); err != nil {
		return false, err
	}
	tok, err := k.key.Token(name)
	if err != nil {
		return false, err
	}
	_, ok := k.entries.Get(tok)
	return ok, nil
}

// Fingerprint returns a short keyed identifier for name, safe to write to
// logs: it does not reveal the name to anyone without the password.
func (k *Keychain) Fingerprint(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	if err := k.unlock(); err != nil {
		return "", err
	}
	tok, err := k.key.Token(name)
	if err != nil {
		return "", err
	}
	return tok.Short(), nil
}

// Remove deletes the entry under name and reports whether it existed.
func (k *Keychain) Remove(name string) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.unlock(); err != nil {
		return false, err
	}
	tok, err := k.key.Token(name)
	if err != nil {
		return false, err
	}
	return k.entries.Remove(tok), nil
}

// Dump serializes the keychain and returns the vault with its checksum.
// The checksum must be kept apart from the vault for Load to detect
// tampering and rollback.
func (k *Keychain) Dump() ([]byte, domain.Checksum, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.key == nil {
		return nil, domain.Checksum{}, ErrClosed
	}
	return codec.Encode(codec.Document{
		ID:      k.id,
		KDF:     k.kdf,
		Salt:    k.salt,
		Check:   k.check,
		Entries: k.entries.Records(),
	})
}

// ID returns the store ID, stable across Dump and Load.
func (k *Keychain) ID() uuid.UUID { return k.id }

// KDF returns the key derivation parameters in use.
func (k *Keychain) KDF() domain.KDFParams { return k.kdf }

// Len returns the number of entries.
func (k *Keychain) Len() int { return k.entries.Len() }

// Close drops the master key. Further operations fail with ErrClosed.
func (k *Keychain) Close() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.key != nil {
		k.key.Destroy()
		k.key = nil
		k.log.Debugf("closed store %s", k.id)
	}
}

// unlock fails with ErrClosed after Close, and with ErrAuthentication when
// the password does not open the vault's check record. Callers hold k.mu.
func (k *Keychain) unlock() error {
	if k.key == nil {
		return ErrClosed
	}
	k.checkOnce.Do(func() {
		if err := k.key.OpenCheck(k.id, k.check); err != nil {
			k.checkErr = fmt.Errorf("wrong password or tampered vault: %w", err)
		}
	})
	return k.checkErr
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrValidation)
	}
	if n := utf8.RuneCountInString(name); n > domain.MaxNameLength {
		return fmt.Errorf("%w: %d characters, limit is %d", ErrValidation, n, domain.MaxNameLength)
	}
	return nil
}
