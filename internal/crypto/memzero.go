package crypto

import "github.com/awnumar/memguard"

// Wipe zeroes the provided buffer. It is best-effort: copies made by the
// runtime (for example string conversions) are out of reach.
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	memguard.WipeBytes(b)
}
