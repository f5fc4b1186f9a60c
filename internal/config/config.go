// Package config loads passkeep's settings from ~/.passkeep/config.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"passkeep/internal/crypto"
	"passkeep/internal/domain"
)

// DefaultVaultPath is used when no vault path is configured. It is relative
// to the working directory, away from the ledger.
const DefaultVaultPath = "vault.json"

// Config holds persistent settings. Empty fields take defaults in Resolve.
type Config struct {
	VaultPath  string           `yaml:"vault_path"`
	LedgerPath string           `yaml:"ledger_path"`
	AuditLog   string           `yaml:"audit_log"`
	KDF        domain.KDFParams `yaml:"kdf"`
}

// DefaultHome returns ~/.passkeep, or "" if the home directory is unknown.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".passkeep")
}

// DefaultPath returns the default config file path: ~/.passkeep/config.yaml.
func DefaultPath() string {
	home := DefaultHome()
	if home == "" {
		return ""
	}
	return filepath.Join(home, "config.yaml")
}

// Load reads a YAML config file from path. A missing, empty or all-comment
// file yields an empty Config and no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve fills unset fields with defaults, placing the ledger and audit
// log under home, and expands a leading ~ in paths. A kdf block that names
// only an algorithm gets that algorithm's default costs.
func (c *Config) Resolve(home string) error {
	if c.VaultPath == "" {
		c.VaultPath = DefaultVaultPath
	}
	if c.LedgerPath == "" {
		c.LedgerPath = filepath.Join(home, "ledger.json")
	}
	if c.AuditLog == "" {
		c.AuditLog = filepath.Join(home, "audit.log")
	}
	for _, p := range []*string{&c.VaultPath, &c.LedgerPath, &c.AuditLog} {
		*p = expandHome(*p)
	}

	costs := c.KDF
	costs.Algorithm = ""
	switch {
	case c.KDF == (domain.KDFParams{}):
		c.KDF = crypto.DefaultKDFParams()
	case costs == (domain.KDFParams{}):
		p, err := crypto.DefaultParamsFor(c.KDF.Algorithm)
		if err != nil {
			return err
		}
		c.KDF = p
	}
	return crypto.ValidateKDFParams(c.KDF)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
