// Package domain defines the core data models, errors and interfaces shared
// across passkeep. It contains plain types (tokens, records, KDF parameters)
// and contracts (interfaces) only.
package domain
