package app

import (
	"fmt"
	"os"
	"path/filepath"

	"passkeep/internal/audit"
	"passkeep/internal/config"
	"passkeep/internal/domain"
	"passkeep/internal/logging"
	"passkeep/internal/services/vault"
	"passkeep/internal/store"
)

// Wire bundles the stores and services for the CLI.
type Wire struct {
	Settings *config.Config
	Vaults   *store.FileStore
	Ledger   *store.Ledger
	Audit    *audit.Logger
	Vault    domain.VaultService
	Log      logging.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	home := cfg.Home
	if home == "" {
		home = config.DefaultHome()
		if home == "" {
			return nil, fmt.Errorf("cannot determine home directory; use --home")
		}
	}
	if err := os.MkdirAll(home, 0o700); err != nil {
		return nil, err
	}

	path := cfg.ConfigPath
	if path == "" {
		path = filepath.Join(home, "config.yaml")
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.VaultPath != "" {
		settings.VaultPath = cfg.VaultPath
	}
	if cfg.LedgerPath != "" {
		settings.LedgerPath = cfg.LedgerPath
	}
	if cfg.KDF != "" {
		settings.KDF = domain.KDFParams{Algorithm: cfg.KDF}
	}
	if err := settings.Resolve(home); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.Log.Debugf("config %s: vault %s, ledger %s, kdf %s", path, settings.VaultPath, settings.LedgerPath, settings.KDF)

	// File-based stores
	vaults := store.NewFileStore(settings.VaultPath)
	ledger := store.NewLedger(settings.LedgerPath)

	auditLog, err := audit.NewLogger(settings.AuditLog)
	if err != nil {
		return nil, err
	}

	opts := []vault.Option{
		vault.WithAudit(auditLog),
		vault.WithLogger(cfg.Log),
		vault.WithKDF(settings.KDF),
	}
	if cfg.NoVerify {
		opts = append(opts, vault.SkipVerification())
	}

	return &Wire{
		Settings: settings,
		Vaults:   vaults,
		Ledger:   ledger,
		Audit:    auditLog,
		Vault:    vault.New(vaults, ledger, opts...),
		Log:      cfg.Log,
	}, nil
}

// Close releases the audit log.
func (w *Wire) Close() error {
	return w.Audit.Close()
}
