package crypto_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"passkeep/internal/domain"
)

func TestCheck_RoundTrip(t *testing.T) {
	k := testKey(1)
	id := uuid.New()
	rec, err := k.SealCheck(id)
	if err != nil {
		t.Fatalf("SealCheck: %v", err)
	}
	if err := k.OpenCheck(id, rec); err != nil {
		t.Fatalf("OpenCheck: %v", err)
	}
}

func TestCheck_Rejects(t *testing.T) {
	k := testKey(1)
	id := uuid.New()
	rec, err := k.SealCheck(id)
	if err != nil {
		t.Fatalf("SealCheck: %v", err)
	}
	tampered := rec.Clone()
	tampered.Ciphertext[0] ^= 0x01

	// A check record must not open as an entry either.
	tok, _ := k.Token("example.com")
	entry, err := k.Seal(tok, "hunter2")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	cases := map[string]func() error{
		"wrong key":      func() error { return testKey(2).OpenCheck(id, rec) },
		"other store":    func() error { return k.OpenCheck(uuid.New(), rec) },
		"tampered":       func() error { return k.OpenCheck(id, tampered) },
		"entry as check": func() error { return k.OpenCheck(id, entry) },
		"check as entry": func() error {
			_, err := k.Open(tok, rec)
			return err
		},
	}
	for name, fn := range cases {
		if err := fn(); !errors.Is(err, domain.ErrAuthentication) {
			t.Errorf("%s: got %v, want ErrAuthentication", name, err)
		}
	}
}
