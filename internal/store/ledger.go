package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"passkeep/internal/domain"
)

// Ledger records the latest checksum of every vault by store ID in a JSON
// file. It is the trusted channel for rollback detection, so it should not
// live next to the vaults it vouches for.
type Ledger struct {
	path string
	mu   sync.Mutex
}

// NewLedger returns a Ledger backed by the file at path.
func NewLedger(path string) *Ledger { return &Ledger{path: path} }

// Path returns the ledger location.
func (l *Ledger) Path() string { return l.path }

// RecordChecksum stores sum as the expected checksum for id.
func (l *Ledger) RecordChecksum(id uuid.UUID, sum domain.Checksum) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	m := map[string]string{}
	if err := readJSON(l.path, &m); err != nil {
		return fmt.Errorf("read ledger %s: %w", l.path, err)
	}
	m[id.String()] = sum.String()
	if err := writeJSON(l.path, m, 0o600); err != nil {
		return fmt.Errorf("write ledger %s: %w", l.path, err)
	}
	return nil
}

// ExpectedChecksum returns the recorded checksum for id and whether one exists.
func (l *Ledger) ExpectedChecksum(id uuid.UUID) (domain.Checksum, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	m := map[string]string{}
	if err := readJSON(l.path, &m); err != nil {
		return domain.Checksum{}, false, fmt.Errorf("read ledger %s: %w", l.path, err)
	}
	s, ok := m[id.String()]
	if !ok {
		return domain.Checksum{}, false, nil
	}
	sum, err := domain.ParseChecksum(s)
	if err != nil {
		return domain.Checksum{}, false, fmt.Errorf("ledger entry for %s: %w", id, err)
	}
	return sum, true, nil
}

// Compile-time assertion that Ledger implements domain.ChecksumLedger.
var _ domain.ChecksumLedger = (*Ledger)(nil)
