package codec_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"passkeep/internal/codec"
	"passkeep/internal/crypto"
	"passkeep/internal/domain"
)

func sampleDoc() codec.Document {
	ct := func(b byte) []byte { return bytes.Repeat([]byte{b}, crypto.PadBlockSize+crypto.Overhead) }
	return codec.Document{
		ID:    uuid.MustParse("6f1c2a8e-3b7d-4c1e-9a55-0d2e4b7f8a10"),
		KDF:   crypto.DefaultKDFParams(),
		Salt:  domain.Salt{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		Check: domain.EntryRecord{Nonce: domain.Nonce{9}, Ciphertext: ct(9)},
		Entries: []domain.TokenRecord{
			{Token: domain.EntryToken{0xb0}, Record: domain.EntryRecord{Nonce: domain.Nonce{2}, Ciphertext: ct(2)}},
			{Token: domain.EntryToken{0xa0}, Record: domain.EntryRecord{Nonce: domain.Nonce{1}, Ciphertext: ct(1)}},
		},
	}
}

func mustEncode(t *testing.T, doc codec.Document) ([]byte, domain.Checksum) {
	t.Helper()
	blob, sum, err := codec.Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return blob, sum
}

func TestEncode_Canonical(t *testing.T) {
	doc := sampleDoc()
	blob1, sum1 := mustEncode(t, doc)

	doc.Entries[0], doc.Entries[1] = doc.Entries[1], doc.Entries[0]
	blob2, sum2 := mustEncode(t, doc)

	if !bytes.Equal(blob1, blob2) || sum1 != sum2 {
		t.Fatal("entry order changed the encoding")
	}
	if sum1 != codec.Sum(blob1) {
		t.Fatal("returned checksum differs from Sum(blob)")
	}

	decoded, err := codec.Decode(blob1)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	blob3, _ := mustEncode(t, decoded)
	if !bytes.Equal(blob1, blob3) {
		t.Fatal("re-encoding decoded content changed the bytes")
	}
}

func TestEncode_Shape(t *testing.T) {
	blob, _ := mustEncode(t, sampleDoc())
	s := string(blob)
	for _, want := range []string{
		`{"version":1,"id":"6f1c2a8e-3b7d-4c1e-9a55-0d2e4b7f8a10",`,
		`"kdf":{"algorithm":"pbkdf2-sha256","iterations":100000}`,
		`"salt":"AQIDBAUGBwgJCgsMDQ4PEA==","check":{"nonce":"CQAAAAAAAAAAAAAA","ciphertext":"CQkJ`,
		`"entries":[{"token":"oA`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("encoding %s missing %s", s, want)
		}
	}

	empty := sampleDoc()
	empty.Entries = nil
	blob, _ = mustEncode(t, empty)
	if !strings.Contains(string(blob), `"entries":[]`) {
		t.Errorf("empty store encoded as %s", blob)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	doc := sampleDoc()
	blob, _ := mustEncode(t, doc)
	got, err := codec.Decode(blob)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.ID != doc.ID || got.Salt != doc.Salt || got.KDF != doc.KDF || got.Check.Nonce != doc.Check.Nonce {
		t.Fatalf("header mismatch: %+v", got)
	}
	if len(got.Entries) != 2 || got.Entries[0].Token != (domain.EntryToken{0xa0}) {
		t.Fatalf("entries mismatch: %+v", got.Entries)
	}
	if !bytes.Equal(got.Entries[1].Record.Ciphertext, doc.Entries[0].Record.Ciphertext) {
		t.Fatal("ciphertext mismatch")
	}
}

func TestSum_SingleByteFlip(t *testing.T) {
	blob, sum := mustEncode(t, sampleDoc())
	for i := range blob {
		mutated := bytes.Clone(blob)
		mutated[i] ^= 0x01
		if codec.Sum(mutated) == sum {
			t.Fatalf("flipping byte %d left the checksum unchanged", i)
		}
	}
}

// mutate decodes the sample vault into a generic map, applies fn and
// re-marshals it.
func mutate(t *testing.T, fn func(m map[string]any)) []byte {
	t.Helper()
	blob, _ := mustEncode(t, sampleDoc())
	var m map[string]any
	if err := json.Unmarshal(blob, &m); err != nil {
		t.Fatal(err)
	}
	fn(m)
	out, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func firstEntry(m map[string]any) map[string]any {
	return m["entries"].([]any)[0].(map[string]any)
}

func TestDecode_FormatErrors(t *testing.T) {
	valid, _ := mustEncode(t, sampleDoc())

	cases := map[string][]byte{
		"not json":      []byte("hello"),
		"empty":         nil,
		"trailing data": append(bytes.Clone(valid), []byte(`{}`)...),
		"unknown field": mutate(t, func(m map[string]any) { m["checksum"] = "x" }),
		"bad version":   mutate(t, func(m map[string]any) { m["version"] = 2 }),
		"missing id":    mutate(t, func(m map[string]any) { delete(m, "id") }),
		"bad id":        mutate(t, func(m map[string]any) { m["id"] = "nope" }),
		"missing salt":  mutate(t, func(m map[string]any) { delete(m, "salt") }),
		"short salt":    mutate(t, func(m map[string]any) { m["salt"] = "AQID" }),
		"bad base64":    mutate(t, func(m map[string]any) { m["salt"] = "!!!" }),
		"unknown kdf":   mutate(t, func(m map[string]any) { m["kdf"] = map[string]any{"algorithm": "md5"} }),
		"weak kdf": mutate(t, func(m map[string]any) {
			m["kdf"] = map[string]any{"algorithm": "pbkdf2-sha256", "iterations": 1}
		}),
		"missing check": mutate(t, func(m map[string]any) { delete(m, "check") }),
		"short check": mutate(t, func(m map[string]any) {
			m["check"].(map[string]any)["ciphertext"] = "AQID"
		}),
		"short token": mutate(t, func(m map[string]any) { firstEntry(m)["token"] = "AQID" }),
		"short nonce": mutate(t, func(m map[string]any) { firstEntry(m)["nonce"] = "AQID" }),
		"short ciphertext": mutate(t, func(m map[string]any) {
			firstEntry(m)["ciphertext"] = "AQID"
		}),
		"duplicate token": mutate(t, func(m map[string]any) {
			es := m["entries"].([]any)
			es[1].(map[string]any)["token"] = es[0].(map[string]any)["token"]
		}),
	}
	for name, blob := range cases {
		_, err := codec.Decode(blob)
		if !errors.Is(err, domain.ErrFormat) {
			t.Errorf("%s: got %v, want ErrFormat", name, err)
		}
	}
}

func TestPeekID(t *testing.T) {
	doc := sampleDoc()
	blob, _ := mustEncode(t, doc)

	id, err := codec.PeekID(blob)
	if err != nil {
		t.Fatalf("PeekID: %v", err)
	}
	if id != doc.ID {
		t.Fatalf("PeekID = %s, want %s", id, doc.ID)
	}

	for _, bad := range []string{"", "[]", `{"id":"nope"}`, `{"version":1}`} {
		if _, err := codec.PeekID([]byte(bad)); !errors.Is(err, domain.ErrFormat) {
			t.Fatalf("PeekID(%q) err = %v, want ErrFormat", bad, err)
		}
	}
}
