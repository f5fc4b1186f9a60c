package codec

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"

	"passkeep/internal/crypto"
	"passkeep/internal/domain"
)

// FormatVersion is the current vault document version.
const FormatVersion = 1

// Document is the logical content of a vault.
type Document struct {
	ID      uuid.UUID
	KDF     domain.KDFParams
	Salt    domain.Salt
	Check   domain.EntryRecord
	Entries []domain.TokenRecord
}

// wireDocument is the on-disk JSON structure. Field order is the canonical
// order.
type wireDocument struct {
	Version int              `json:"version"`
	ID      uuid.UUID        `json:"id"`
	KDF     domain.KDFParams `json:"kdf"`
	Salt    []byte           `json:"salt"`
	Check   wireRecord       `json:"check"`
	Entries []wireEntry      `json:"entries"`
}

type wireRecord struct {
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

type wireEntry struct {
	Token      []byte `json:"token"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// Sum returns the checksum of a serialized vault.
func Sum(blob []byte) domain.Checksum {
	return sha256.Sum256(blob)
}

// Encode renders doc in canonical form and returns it with its checksum.
func Encode(doc Document) ([]byte, domain.Checksum, error) {
	entries := make([]domain.TokenRecord, len(doc.Entries))
	copy(entries, doc.Entries)
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].Token[:], entries[j].Token[:]) < 0
	})

	w := wireDocument{
		Version: FormatVersion,
		ID:      doc.ID,
		KDF:     doc.KDF,
		Salt:    doc.Salt.Slice(),
		Check:   wireRecord{Nonce: doc.Check.Nonce.Slice(), Ciphertext: doc.Check.Ciphertext},
		Entries: make([]wireEntry, 0, len(entries)),
	}
	for _, e := range entries {
		w.Entries = append(w.Entries, wireEntry{
			Token:      e.Token.Slice(),
			Nonce:      e.Record.Nonce.Slice(),
			Ciphertext: e.Record.Ciphertext,
		})
	}

	blob, err := json.Marshal(w)
	if err != nil {
		return nil, domain.Checksum{}, fmt.Errorf("encode vault: %w", err)
	}
	return blob, Sum(blob), nil
}

// Decode parses a vault. Every structural problem is reported as
// domain.ErrFormat before any cryptography runs.
func Decode(blob []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(blob))
	dec.DisallowUnknownFields()

	var w wireDocument
	if err := dec.Decode(&w); err != nil {
		return Document{}, formatErr("decode: %v", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Document{}, formatErr("trailing data after document")
	}

	if w.Version != FormatVersion {
		return Document{}, formatErr("unsupported version %d", w.Version)
	}
	if w.ID == uuid.Nil {
		return Document{}, formatErr("missing store id")
	}
	salt, err := domain.SaltFromBytes(w.Salt)
	if err != nil {
		return Document{}, formatErr("%v", err)
	}
	if err := crypto.ValidateKDFParams(w.KDF); err != nil {
		return Document{}, formatErr("kdf: %v", err)
	}
	check, err := decodeRecord(w.Check.Nonce, w.Check.Ciphertext)
	if err != nil {
		return Document{}, formatErr("check: %v", err)
	}

	doc := Document{
		ID:      w.ID,
		KDF:     w.KDF,
		Salt:    salt,
		Check:   check,
		Entries: make([]domain.TokenRecord, 0, len(w.Entries)),
	}
	seen := make(map[domain.EntryToken]struct{}, len(w.Entries))
	for i, e := range w.Entries {
		rec, err := decodeEntry(e)
		if err != nil {
			return Document{}, formatErr("entry %d: %v", i, err)
		}
		if _, dup := seen[rec.Token]; dup {
			return Document{}, formatErr("entry %d: duplicate token", i)
		}
		seen[rec.Token] = struct{}{}
		doc.Entries = append(doc.Entries, rec)
	}
	return doc, nil
}

// PeekID reads the store ID from a vault without validating anything else.
// It lets a host look up the vault's trusted checksum before calling Load.
func PeekID(blob []byte) (uuid.UUID, error) {
	var w struct {
		ID uuid.UUID `json:"id"`
	}
	if err := json.Unmarshal(blob, &w); err != nil {
		return uuid.Nil, formatErr("decode: %v", err)
	}
	if w.ID == uuid.Nil {
		return uuid.Nil, formatErr("missing store id")
	}
	return w.ID, nil
}

func decodeEntry(e wireEntry) (domain.TokenRecord, error) {
	tok, err := domain.TokenFromBytes(e.Token)
	if err != nil {
		return domain.TokenRecord{}, err
	}
	rec, err := decodeRecord(e.Nonce, e.Ciphertext)
	if err != nil {
		return domain.TokenRecord{}, err
	}
	return domain.TokenRecord{Token: tok, Record: rec}, nil
}

func decodeRecord(nonce, ciphertext []byte) (domain.EntryRecord, error) {
	n, err := domain.NonceFromBytes(nonce)
	if err != nil {
		return domain.EntryRecord{}, err
	}
	body := len(ciphertext) - crypto.Overhead
	if body < crypto.PadBlockSize || body%crypto.PadBlockSize != 0 {
		return domain.EntryRecord{}, fmt.Errorf("ciphertext length %d is not tag + n*%d", len(ciphertext), crypto.PadBlockSize)
	}
	return domain.EntryRecord{Nonce: n, Ciphertext: ciphertext}, nil
}

func formatErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrFormat, fmt.Sprintf(format, args...))
}
