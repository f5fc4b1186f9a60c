package store

import (
	"fmt"
	"sync"

	"passkeep/internal/domain"
)

// FileStore persists a single vault blob at a fixed path.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a FileStore for the vault at path.
func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

// Path returns the vault location.
func (s *FileStore) Path() string { return s.path }

// SaveVault atomically replaces the vault with blob.
func (s *FileStore) SaveVault(blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFile(s.path, blob, 0o600); err != nil {
		return fmt.Errorf("write vault %s: %w", s.path, err)
	}
	return nil
}

// LoadVault returns the stored blob and whether the vault exists.
func (s *FileStore) LoadVault() ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path)
	if err != nil {
		return nil, false, fmt.Errorf("read vault %s: %w", s.path, err)
	}
	if b == nil {
		return nil, false, nil
	}
	return b, true, nil
}

// Compile-time assertion that FileStore implements domain.VaultStore.
var _ domain.VaultStore = (*FileStore)(nil)
