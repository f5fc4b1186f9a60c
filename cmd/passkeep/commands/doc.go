// Package commands defines the passkeep CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init     Create an empty vault
//   - set      Store a secret under a name
//   - get      Print the secret stored under a name
//   - rm       Remove the secret stored under a name
//   - verify   Check the vault against its recorded checksum
//   - info     Describe the vault without unlocking it
//
// # Implementation
//
// The root command loads ~/.passkeep/config.yaml, applies flag overrides and
// builds the dependency graph (vault file, checksum ledger, audit log, vault
// service) before any subcommand runs. Each command unlocks the vault, does
// one operation and saves it again; the master password comes from -p,
// PASSKEEP_PASSWORD or a terminal prompt.
package commands
