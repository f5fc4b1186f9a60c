package keychain

import (
	"passkeep/internal/crypto"
	"passkeep/internal/domain"
)

// Logger receives diagnostic messages. Names, values and keys are never
// passed to it.
type Logger interface {
	Debugf(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Option configures Init and Load.
type Option func(*options)

type options struct {
	kdf domain.KDFParams
	log Logger
}

func newOptions(opts []Option) options {
	o := options{kdf: crypto.DefaultKDFParams(), log: nopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithKDF selects the key derivation for Init. Load always uses the
// parameters recorded in the vault.
func WithKDF(p domain.KDFParams) Option {
	return func(o *options) { o.kdf = p }
}

// WithLogger routes diagnostics to l.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
