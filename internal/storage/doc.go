// Package storage provides the key-value settings store behind token storage
// and preferences.
//
// Backends:
//   - Memory: process local, used by tests and one-shot runs
//   - File: a TOML document (default ~/.shoplist/settings.toml, mode 0600)
//   - Redis: shared between processes, keys namespaced by a prefix
//
// Each backend makes single-key operations atomic; SetMany writes all pairs
// together (one file rewrite, one MSET).
package storage
