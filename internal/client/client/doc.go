// Package client bootstraps local persistence for the crystalpad client.
//
// InitDatabase creates the parent directory, opens the SQLite file, pins the pool to a single connection,
// and applies the embedded goose migrations from internal/client/migrations.
// NewRepositories bundles the repositories bound to the opened database.
//
// See Also
//
//   - DB helpers:   InitDatabase, RunMigrations
//   - Repositories: internal/client/repositories/notes, .../settings
package client
