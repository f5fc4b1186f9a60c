package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"

	"passkeep/internal/domain"
)

const KeySize = 32

// PBKDF2-HMAC-SHA256 costs.
const (
	DefaultPBKDF2Iterations = 100_000
	MinPBKDF2Iterations     = 100_000
	MaxPBKDF2Iterations     = 10_000_000
)

// Argon2id costs. Memory is in KiB.
const (
	DefaultArgon2Time      = 1
	DefaultArgon2MemoryKiB = 64 * 1024
	DefaultArgon2Threads   = 4
	MinArgon2MemoryKiB     = 19 * 1024
	MaxArgon2MemoryKiB     = 4 * 1024 * 1024
	MaxArgon2Time          = 64
)

// scrypt costs.
const (
	DefaultScryptN = 1 << 15
	DefaultScryptR = 8
	DefaultScryptP = 1
	MinScryptN     = 1 << 14
	MaxScryptN     = 1 << 22
)

// DefaultKDFParams returns the default derivation: PBKDF2-HMAC-SHA256 with
// DefaultPBKDF2Iterations.
func DefaultKDFParams() domain.KDFParams {
	return domain.KDFParams{Algorithm: domain.KDFPBKDF2SHA256, Iterations: DefaultPBKDF2Iterations}
}

// DefaultParamsFor returns the default costs for alg.
func DefaultParamsFor(alg domain.KDFAlgorithm) (domain.KDFParams, error) {
	switch alg {
	case domain.KDFPBKDF2SHA256:
		return DefaultKDFParams(), nil
	case domain.KDFArgon2id:
		return domain.KDFParams{
			Algorithm: alg,
			Time:      DefaultArgon2Time,
			MemoryKiB: DefaultArgon2MemoryKiB,
			Threads:   DefaultArgon2Threads,
		}, nil
	case domain.KDFScrypt:
		return domain.KDFParams{Algorithm: alg, N: DefaultScryptN, R: DefaultScryptR, P: DefaultScryptP}, nil
	default:
		return domain.KDFParams{}, fmt.Errorf("%w: unsupported algorithm %q", domain.ErrKeyDerivation, alg)
	}
}

// ValidateKDFParams checks p against the supported algorithms and the
// documented cost bounds. Errors wrap domain.ErrKeyDerivation.
func ValidateKDFParams(p domain.KDFParams) error {
	switch p.Algorithm {
	case domain.KDFPBKDF2SHA256:
		if p.Iterations < MinPBKDF2Iterations || p.Iterations > MaxPBKDF2Iterations {
			return fmt.Errorf("%w: pbkdf2 iterations %d outside [%d, %d]",
				domain.ErrKeyDerivation, p.Iterations, MinPBKDF2Iterations, MaxPBKDF2Iterations)
		}
	case domain.KDFArgon2id:
		if p.Time < 1 || p.Time > MaxArgon2Time {
			return fmt.Errorf("%w: argon2id time %d outside [1, %d]", domain.ErrKeyDerivation, p.Time, MaxArgon2Time)
		}
		if p.MemoryKiB < MinArgon2MemoryKiB || p.MemoryKiB > MaxArgon2MemoryKiB {
			return fmt.Errorf("%w: argon2id memory %dKiB outside [%d, %d]",
				domain.ErrKeyDerivation, p.MemoryKiB, MinArgon2MemoryKiB, MaxArgon2MemoryKiB)
		}
		if p.Threads < 1 {
			return fmt.Errorf("%w: argon2id threads must be positive", domain.ErrKeyDerivation)
		}
	case domain.KDFScrypt:
		if p.N < MinScryptN || p.N > MaxScryptN || p.N&(p.N-1) != 0 {
			return fmt.Errorf("%w: scrypt N %d must be a power of two in [%d, %d]",
				domain.ErrKeyDerivation, p.N, MinScryptN, MaxScryptN)
		}
		if p.R < 1 || p.P < 1 || p.R*p.P >= 1<<30 {
			return fmt.Errorf("%w: scrypt r=%d p=%d out of range", domain.ErrKeyDerivation, p.R, p.P)
		}
	default:
		return fmt.Errorf("%w: unsupported algorithm %q", domain.ErrKeyDerivation, p.Algorithm)
	}
	return nil
}

// NewSalt returns a fresh random salt.
func NewSalt() (domain.Salt, error) {
	var s domain.Salt
	if _, err := rand.Read(s[:]); err != nil {
		return s, fmt.Errorf("generate salt: %w", err)
	}
	return s, nil
}

// DeriveMasterKey stretches password with salt under p. It is deterministic
// for equal inputs and deliberately slow. It fails only on malformed input,
// never because of the password's content.
func DeriveMasterKey(password string, salt []byte, p domain.KDFParams) (*MasterKey, error) {
	if len(salt) != domain.SaltSize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", domain.ErrKeyDerivation, domain.SaltSize, len(salt))
	}
	if err := ValidateKDFParams(p); err != nil {
		return nil, err
	}

	pw := []byte(password)
	defer Wipe(pw)

	var raw []byte
	switch p.Algorithm {
	case domain.KDFPBKDF2SHA256:
		raw = pbkdf2.Key(pw, salt, p.Iterations, KeySize, sha256.New)
	case domain.KDFArgon2id:
		raw = argon2.IDKey(pw, salt, p.Time, p.MemoryKiB, p.Threads, KeySize)
	case domain.KDFScrypt:
		var err error
		raw, err = scrypt.Key(pw, salt, p.N, p.R, p.P, KeySize)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrKeyDerivation, err)
		}
	}
	return newMasterKey(raw), nil
}
