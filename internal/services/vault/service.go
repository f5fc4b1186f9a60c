package vault

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"passkeep/internal/audit"
	"passkeep/internal/codec"
	"passkeep/internal/crypto"
	"passkeep/internal/domain"
	"passkeep/internal/keychain"
)

var (
	// ErrVaultExists is returned by Create when a vault is already stored.
	ErrVaultExists = errors.New("vault already exists")
	// ErrNoVault is returned when no vault is stored.
	ErrNoVault = errors.New("no vault found")
	// ErrUnverified is returned when the ledger holds no checksum for the
	// vault and verification was not skipped.
	ErrUnverified = errors.New("no trusted checksum recorded for vault")
)

// Logger receives diagnostics. logging.Logger satisfies it.
type Logger interface {
	Debugf(msg string, args ...any)
	Warnf(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Warnf(string, ...any)  {}

// Option configures a Service.
type Option func(*Service)

// WithAudit records every operation to l.
func WithAudit(l *audit.Logger) Option { return func(s *Service) { s.audit = l } }

// WithLogger routes diagnostics, including the keychain's, to l.
func WithLogger(l Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithKDF selects the key derivation for vaults created by Create.
func WithKDF(p domain.KDFParams) Option { return func(s *Service) { s.kdf = p } }

// SkipVerification loads vaults without checking the ledger. It removes
// rollback protection and is meant for recovering from a lost ledger.
func SkipVerification() Option { return func(s *Service) { s.noVerify = true } }

// Service implements domain.VaultService.
type Service struct {
	vaults   domain.VaultStore
	ledger   domain.ChecksumLedger
	audit    *audit.Logger
	log      Logger
	kdf      domain.KDFParams
	noVerify bool
}

// New returns a vault service over the given stores.
func New(vaults domain.VaultStore, ledger domain.ChecksumLedger, opts ...Option) *Service {
	s := &Service{
		vaults: vaults,
		ledger: ledger,
		log:    nopLogger{},
		kdf:    crypto.DefaultKDFParams(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create initialises and saves a new, empty vault.
func (s *Service) Create(password string) (uuid.UUID, error) {
	if _, ok, err := s.vaults.LoadVault(); err != nil {
		return uuid.Nil, err
	} else if ok {
		return uuid.Nil, ErrVaultExists
	}

	k, err := keychain.Init(password, keychain.WithKDF(s.kdf), keychain.WithLogger(s.log))
	if err != nil {
		return uuid.Nil, err
	}
	defer k.Close()

	if err := s.save(k); err != nil {
		return uuid.Nil, err
	}
	s.record(k, audit.ActionInit, "", nil, nil)
	return k.ID(), nil
}

// Set stores value under name and saves the vault. It reports whether an
// existing value was replaced.
func (s *Service) Set(password, name, value string) (bool, error) {
	k, err := s.open(password)
	if err != nil {
		return false, err
	}
	defer k.Close()

	replaced, err := k.Has(name)
	if err == nil {
		err = k.Set(name, value)
	}
	if err == nil {
		err = s.save(k)
	}
	s.record(k, audit.ActionWrite, name, &replaced, err)
	if err != nil {
		return false, err
	}
	return replaced, nil
}

// Get returns the value stored under name.
func (s *Service) Get(password, name string) (string, bool, error) {
	k, err := s.open(password)
	if err != nil {
		return "", false, err
	}
	defer k.Close()

	value, found, err := k.Get(name)
	s.record(k, audit.ActionRead, name, &found, err)
	return value, found, err
}

// Remove deletes the entry under name. The vault is only rewritten when an
// entry was removed.
func (s *Service) Remove(password, name string) (bool, error) {
	k, err := s.open(password)
	if err != nil {
		return false, err
	}
	defer k.Close()

	removed, err := k.Remove(name)
	if err == nil && removed {
		err = s.save(k)
	}
	s.record(k, audit.ActionDelete, name, &removed, err)
	return removed, err
}

// Inspect describes the stored vault without unlocking it. If the ledger
// holds a checksum for the vault it must match; Verified reports whether
// one was found. Once the store ID is known it is returned even on error.
func (s *Service) Inspect() (domain.VaultInfo, error) {
	blob, id, expected, err := s.load()
	if err != nil {
		return domain.VaultInfo{ID: id}, err
	}
	info := domain.VaultInfo{ID: id, Checksum: codec.Sum(blob)}
	if expected != "" {
		if err := keychain.Verify(blob, expected); err != nil {
			return info, err
		}
	}
	doc, err := codec.Decode(blob)
	if err != nil {
		return info, err
	}
	info.KDF = doc.KDF
	info.Entries = len(doc.Entries)
	info.Verified = expected != ""
	return info, nil
}

// Verify is Inspect that also fails with ErrUnverified when the ledger has
// no checksum for the vault.
func (s *Service) Verify() (domain.VaultInfo, error) {
	info, err := s.Inspect()
	if err == nil && !info.Verified {
		err = fmt.Errorf("%w: store %s", ErrUnverified, info.ID)
	}
	if s.audit != nil && info.ID != uuid.Nil {
		s.logAudit(audit.Entry{Action: audit.ActionVerify, Store: info.ID.String(), Error: errString(err)})
	}
	return info, err
}

// load reads the vault and the checksum the ledger expects for it. The
// checksum is empty when the ledger has none.
func (s *Service) load() (blob []byte, id uuid.UUID, expected string, err error) {
	blob, ok, err := s.vaults.LoadVault()
	if err != nil {
		return nil, uuid.Nil, "", err
	}
	if !ok {
		return nil, uuid.Nil, "", ErrNoVault
	}
	id, err = codec.PeekID(blob)
	if err != nil {
		return nil, uuid.Nil, "", err
	}
	sum, ok, err := s.ledger.ExpectedChecksum(id)
	if err != nil {
		return nil, id, "", err
	}
	if ok {
		expected = sum.String()
	}
	return blob, id, expected, nil
}

func (s *Service) open(password string) (*keychain.Keychain, error) {
	blob, id, expected, err := s.load()
	if err != nil {
		return nil, err
	}
	switch {
	case s.noVerify:
		s.log.Warnf("loading store %s without checksum verification", id)
		expected = ""
	case expected == "":
		return nil, fmt.Errorf("%w: store %s", ErrUnverified, id)
	}
	return keychain.Load(password, blob, expected, keychain.WithLogger(s.log))
}

// save writes the vault, then records its checksum.
func (s *Service) save(k *keychain.Keychain) error {
	blob, sum, err := k.Dump()
	if err != nil {
		return err
	}
	if err := s.vaults.SaveVault(blob); err != nil {
		return err
	}
	if err := s.ledger.RecordChecksum(k.ID(), sum); err != nil {
		return fmt.Errorf("vault saved but checksum not recorded: %w", err)
	}
	s.log.Debugf("saved store %s, checksum %s", k.ID(), sum)
	return nil
}

func (s *Service) record(k *keychain.Keychain, action audit.Action, name string, found *bool, opErr error) {
	if s.audit == nil {
		return
	}
	e := audit.Entry{Action: action, Store: k.ID().String(), Found: found, Error: errString(opErr)}
	if name != "" {
		if fp, err := k.Fingerprint(name); err == nil {
			e.Entry = fp
		}
	}
	if opErr != nil {
		e.Found = nil
	}
	s.logAudit(e)
}

// logAudit is best-effort: a failed audit write does not fail the operation.
func (s *Service) logAudit(e audit.Entry) {
	if err := s.audit.Log(e); err != nil {
		s.log.Warnf("audit: %v", err)
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Compile-time assertion that Service implements domain.VaultService.
var _ domain.VaultService = (*Service)(nil)
