package crypto_test

import (
	"bytes"
	"strings"
	"testing"

	"passkeep/internal/crypto"
)

func TestPad_RoundTrip(t *testing.T) {
	cases := []string{"", "a", "p@ss1", strings.Repeat("x", 59), strings.Repeat("x", 60), strings.Repeat("y", 200)}
	for _, v := range cases {
		padded := crypto.Pad([]byte(v))
		if len(padded)%crypto.PadBlockSize != 0 || len(padded) == 0 {
			t.Fatalf("len %d: padded length %d not a positive multiple of %d", len(v), len(padded), crypto.PadBlockSize)
		}
		got, err := crypto.Unpad(padded)
		if err != nil {
			t.Fatalf("len %d: Unpad: %v", len(v), err)
		}
		if string(got) != v {
			t.Fatalf("len %d: got %q", len(v), got)
		}
	}
}

func TestPad_HidesExactLength(t *testing.T) {
	short := crypto.Pad([]byte("a"))
	longer := crypto.Pad([]byte(strings.Repeat("b", 40)))
	if len(short) != len(longer) {
		t.Fatalf("values in the same block class padded to %d and %d", len(short), len(longer))
	}
	// The 4-byte length prefix counts towards the block.
	if got := len(crypto.Pad([]byte(strings.Repeat("c", 60)))); got != crypto.PadBlockSize {
		t.Fatalf("60-byte value padded to %d, want %d", got, crypto.PadBlockSize)
	}
	if got := len(crypto.Pad([]byte(strings.Repeat("c", 61)))); got != 2*crypto.PadBlockSize {
		t.Fatalf("61-byte value padded to %d, want %d", got, 2*crypto.PadBlockSize)
	}
}

func TestUnpad_Rejects(t *testing.T) {
	valid := crypto.Pad([]byte("secret"))

	nonZero := bytes.Clone(valid)
	nonZero[len(nonZero)-1] = 1

	longPrefix := bytes.Clone(valid)
	longPrefix[0] = 0xff

	overPadded := make([]byte, 2*crypto.PadBlockSize)
	copy(overPadded, valid)

	cases := map[string][]byte{
		"empty":        nil,
		"truncated":    valid[:crypto.PadBlockSize-1],
		"not a block":  append(bytes.Clone(valid), 0),
		"nonzero pad":  nonZero,
		"long prefix":  longPrefix,
		"extra blocks": overPadded,
	}
	for name, in := range cases {
		if _, err := crypto.Unpad(in); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
