package crypto

import (
	"encoding/binary"
	"errors"
)

// PadBlockSize is the granularity padded plaintexts are rounded up to, so
// ciphertext lengths only reveal a value's size class.
const PadBlockSize = 64

const lengthPrefixSize = 4

// MaxValueLength is the largest value Pad accepts.
const MaxValueLength = 1 << 30

var errBadPadding = errors.New("invalid padding")

// Pad frames value as a 4-byte big-endian length, the value, then zero bytes
// up to the next multiple of PadBlockSize. The result is never empty.
func Pad(value []byte) []byte {
	out := make([]byte, paddedSize(len(value)))
	binary.BigEndian.PutUint32(out, uint32(len(value)))
	copy(out[lengthPrefixSize:], value)
	return out
}

// Unpad reverses Pad. It rejects any input Pad could not have produced:
// wrong block multiple, a length prefix past the end, non-zero padding, or
// more padding than needed.
func Unpad(padded []byte) ([]byte, error) {
	if len(padded) < PadBlockSize || len(padded)%PadBlockSize != 0 {
		return nil, errBadPadding
	}
	n := uint64(binary.BigEndian.Uint32(padded))
	if n > uint64(len(padded)-lengthPrefixSize) {
		return nil, errBadPadding
	}
	end := lengthPrefixSize + int(n)
	if paddedSize(int(n)) != len(padded) {
		return nil, errBadPadding
	}
	var acc byte
	for _, b := range padded[end:] {
		acc |= b
	}
	if acc != 0 {
		return nil, errBadPadding
	}
	return padded[lengthPrefixSize:end], nil
}

func paddedSize(valueLen int) int {
	n := lengthPrefixSize + valueLen
	return (n + PadBlockSize - 1) / PadBlockSize * PadBlockSize
}
