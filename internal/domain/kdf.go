package domain

import "fmt"

// KDFAlgorithm names a supported password-based key derivation function.
type KDFAlgorithm string

const (
	KDFPBKDF2SHA256 KDFAlgorithm = "pbkdf2-sha256"
	KDFArgon2id     KDFAlgorithm = "argon2id"
	KDFScrypt       KDFAlgorithm = "scrypt"
)

// String returns the string form of the algorithm.
func (a KDFAlgorithm) String() string { return string(a) }

// KDFParams selects a KDF and its cost. Only the fields relevant to
// Algorithm are meaningful; the rest stay zero.
type KDFParams struct {
	Algorithm KDFAlgorithm `json:"algorithm" yaml:"algorithm"`

	// pbkdf2-sha256
	Iterations int `json:"iterations,omitempty" yaml:"iterations,omitempty"`

	// argon2id
	Time      uint32 `json:"time,omitempty" yaml:"time,omitempty"`
	MemoryKiB uint32 `json:"memory_kib,omitempty" yaml:"memory_kib,omitempty"`
	Threads   uint8  `json:"threads,omitempty" yaml:"threads,omitempty"`

	// scrypt
	N int `json:"n,omitempty" yaml:"n,omitempty"`
	R int `json:"r,omitempty" yaml:"r,omitempty"`
	P int `json:"p,omitempty" yaml:"p,omitempty"`
}

// String summarises the parameters for logs.
func (p KDFParams) String() string {
	switch p.Algorithm {
	case KDFPBKDF2SHA256:
		return fmt.Sprintf("%s(iterations=%d)", p.Algorithm, p.Iterations)
	case KDFArgon2id:
		return fmt.Sprintf("%s(time=%d, memory=%dKiB, threads=%d)", p.Algorithm, p.Time, p.MemoryKiB, p.Threads)
	case KDFScrypt:
		return fmt.Sprintf("%s(N=%d, r=%d, p=%d)", p.Algorithm, p.N, p.R, p.P)
	default:
		return string(p.Algorithm)
	}
}
