// Package sqlite provides the SQLite-backed Storage Engine and Repository.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements the map and shortcut
// store interfaces through a single database connection:
//
//   - MapStore: Read access to the seeded maps
//   - ShortcutStore: Shortcut persistence, including the atomic key assignment
//
// # Schema
//
// The schema lives in the migrations/ directory as additive .up.sql files.
// Every file is applied on each Open and must be safe to re-run
// (CREATE TABLE IF NOT EXISTS). Both parent relationships cascade on delete:
// removing a map removes its shortcuts, removing a shortcut removes its media.
//
// # Seed Data
//
// Open inserts the nine reference maps with an insert-if-absent statement
// keyed on name, so reopening a populated file adds nothing.
//
// # Data Location
//
// By default, the database is stored at ./app.db.
//
// # Thread Safety
//
// The pool is pinned to one physical connection and every operation holds
// the Store mutex for its whole body. Reads and writes serialize alike;
// the last-insert ID is always read by the goroutine that inserted.
package sqlite
