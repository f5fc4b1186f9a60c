// Package app wires application dependencies for the CLI.
//
// It merges the config file with command-line overrides, builds the vault
// and ledger stores, the audit log and the vault service from Config, and
// exposes them via the Wire struct for commands to use.
package app
