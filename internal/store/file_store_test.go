package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"passkeep/internal/domain"
	"passkeep/internal/store"
)

func TestFileStore_SaveLoad_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "vault.json")
	var vs domain.VaultStore = store.NewFileStore(path)

	if _, ok, err := vs.LoadVault(); err != nil || ok {
		t.Fatalf("missing vault: ok=%v err=%v", ok, err)
	}
	if err := vs.SaveVault([]byte(`{"version":1}`)); err != nil {
		t.Fatalf("save vault: %v", err)
	}
	got, ok, err := vs.LoadVault()
	if err != nil || !ok {
		t.Fatalf("load vault: ok=%v err=%v", ok, err)
	}
	if string(got) != `{"version":1}` {
		t.Fatalf("got %q", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestLedger_RecordExpected(t *testing.T) {
	var l domain.ChecksumLedger = store.NewLedger(filepath.Join(t.TempDir(), "ledger.json"))
	a, b := uuid.New(), uuid.New()

	if _, ok, err := l.ExpectedChecksum(a); err != nil || ok {
		t.Fatalf("empty ledger: ok=%v err=%v", ok, err)
	}
	if err := l.RecordChecksum(a, domain.Checksum{1}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := l.RecordChecksum(b, domain.Checksum{2}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := l.RecordChecksum(a, domain.Checksum{3}); err != nil {
		t.Fatalf("record: %v", err)
	}

	got, ok, err := l.ExpectedChecksum(a)
	if err != nil || !ok || got != (domain.Checksum{3}) {
		t.Fatalf("a: got %v ok=%v err=%v", got, ok, err)
	}
	got, ok, err = l.ExpectedChecksum(b)
	if err != nil || !ok || got != (domain.Checksum{2}) {
		t.Fatalf("b: got %v ok=%v err=%v", got, ok, err)
	}
}

func TestLedger_CorruptEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	id := uuid.New()
	if err := os.WriteFile(path, []byte(`{"`+id.String()+`":"not base64!"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := store.NewLedger(path).ExpectedChecksum(id); err == nil {
		t.Fatal("expected error for corrupt ledger entry")
	}
}
