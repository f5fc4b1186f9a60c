package store

import (
	"bytes"
	"sort"
	"sync"

	"passkeep/internal/domain"
)

// Entries maps entry tokens to encrypted records. Records are copied on the
// way in and out, so callers never share ciphertext buffers with the map.
type Entries struct {
	mu sync.RWMutex
	m  map[domain.EntryToken]domain.EntryRecord
}

// NewEntries returns an empty mapping.
func NewEntries() *Entries {
	return &Entries{m: make(map[domain.EntryToken]domain.EntryRecord)}
}

// NewEntriesFrom builds a mapping from records. Later duplicates win.
func NewEntriesFrom(records []domain.TokenRecord) *Entries {
	e := &Entries{m: make(map[domain.EntryToken]domain.EntryRecord, len(records))}
	for _, r := range records {
		e.m[r.Token] = r.Record.Clone()
	}
	return e
}

// Set stores rec under token, replacing any existing record.
func (e *Entries) Set(token domain.EntryToken, rec domain.EntryRecord) {
	rec = rec.Clone()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.m[token] = rec
}

// Get returns the record stored under token and whether it was present.
func (e *Entries) Get(token domain.EntryToken) (domain.EntryRecord, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	rec, ok := e.m[token]
	if !ok {
		return domain.EntryRecord{}, false
	}
	return rec.Clone(), true
}

// Remove deletes token and reports whether it was present.
func (e *Entries) Remove(token domain.EntryToken) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.m[token]; !ok {
		return false
	}
	delete(e.m, token)
	return true
}

// Len returns the number of entries.
func (e *Entries) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.m)
}

// Records returns copies of all entries sorted by token bytes.
func (e *Entries) Records() []domain.TokenRecord {
	e.mu.RLock()
	out := make([]domain.TokenRecord, 0, len(e.m))
	for tok, rec := range e.m {
		out = append(out, domain.TokenRecord{Token: tok, Record: rec.Clone()})
	}
	e.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].Token[:], out[j].Token[:]) < 0
	})
	return out
}
