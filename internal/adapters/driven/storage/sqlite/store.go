package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/nades-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/nades-cli/internal/core/domain"
	"github.com/custodia-labs/nades-cli/internal/core/ports/driven"
	"github.com/custodia-labs/nades-cli/internal/logger"
)

// DefaultPath is the database file used when no path is configured.
const DefaultPath = "app.db"

// Store owns the one connection to the database file and serializes
// every operation against it. Map and shortcut access goes through
// the wrapper types returned by MapStore and ShortcutStore.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

// Open opens (creating if absent) the database at path, applies the schema
// and seeds the reference maps. Failures are returned as *domain.InitError.
// If path is empty, DefaultPath is used.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, &domain.InitError{Op: "creating data directory", Err: err}
		}
	}

	// WAL for crash safety, foreign keys so the cascades are enforced.
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, &domain.InitError{Op: "opening database", Err: err}
	}

	// One physical connection; Store.mu does the queueing.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &domain.InitError{Op: "opening database", Err: err}
	}

	s := &Store{
		db:   db,
		path: path,
	}

	ctx := context.Background()

	if err := s.migrate(ctx, migrations.FS); err != nil {
		db.Close()
		return nil, &domain.InitError{Op: "running migrations", Err: err}
	}

	if err := s.seed(ctx); err != nil {
		db.Close()
		return nil, &domain.InitError{Op: "seeding maps", Err: err}
	}

	logger.Debug("database ready at %s", path)
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// MapStore returns a MapStore interface backed by this store.
func (s *Store) MapStore() driven.MapStore {
	return &mapStore{store: s}
}

// ShortcutStore returns a ShortcutStore interface backed by this store.
func (s *Store) ShortcutStore() driven.ShortcutStore {
	return &shortcutStore{store: s}
}

// migrate applies every .up.sql file in lexical order.
// Files are additive and idempotent, so nothing tracks which ran before.
func (s *Store) migrate(ctx context.Context, fsys fs.FS) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		logger.Debug("applied %s", name)
	}

	return nil
}
