package app

import (
	"passkeep/internal/domain"
	"passkeep/internal/logging"
)

// Config holds runtime wiring options for building the app. Non-empty
// fields override the config file.
type Config struct {
	Home       string              // state directory, e.g. $HOME/.passkeep
	ConfigPath string              // defaults to Home/config.yaml
	VaultPath  string              // vault file
	LedgerPath string              // checksum ledger file
	KDF        domain.KDFAlgorithm // algorithm for new vaults, at its default cost
	NoVerify   bool                // load vaults without a ledger checksum
	Log        logging.Logger
}
