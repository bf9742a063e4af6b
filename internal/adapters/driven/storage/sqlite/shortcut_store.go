package sqlite

import (
	"context"
	"database/sql"

	"github.com/custodia-labs/nades-cli/internal/core/domain"
	"github.com/custodia-labs/nades-cli/internal/core/ports/driven"
	"github.com/custodia-labs/nades-cli/internal/logger"
)

// shortcutStore implements driven.ShortcutStore.
type shortcutStore struct {
	store *Store
}

var _ driven.ShortcutStore = (*shortcutStore)(nil)

const (
	insertShortcut = `
		INSERT INTO shortcuts (map_id, description, shortcut)
		VALUES (?, ?, ?)
	`
	updateShortcut = `
		UPDATE shortcuts SET description = ?, shortcut = ?
		WHERE id = ? AND map_id = ?
	`
	clearShortcutKey = `
		UPDATE shortcuts SET shortcut = ''
		WHERE map_id = ? AND shortcut = ?
	`
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ListByMap returns the shortcuts bound to mapID, ordered by ID.
func (s *shortcutStore) ListByMap(ctx context.Context, mapID int64) ([]domain.Shortcut, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, map_id, description, shortcut
		FROM shortcuts
		WHERE map_id = ?
		ORDER BY id
	`, mapID)
	if err != nil {
		return nil, &domain.QueryError{Op: "querying shortcuts", Err: err}
	}
	defer rows.Close()

	return collectRows(rows, "shortcuts", scanShortcut)
}

// Save inserts a shortcut and returns the new row's ID.
func (s *shortcutStore) Save(ctx context.Context, mapID int64, description, shortcut string) (int64, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	return insert(ctx, s.store.db, mapID, description, shortcut)
}

// Edit updates description and key on the row matching both IDs.
func (s *shortcutStore) Edit(ctx context.Context, mapID, shortcutID int64, description, shortcut string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	n, err := update(ctx, s.store.db, mapID, shortcutID, description, shortcut)
	if err != nil {
		return err
	}
	if n == 0 {
		logger.Debug("edit matched no shortcut %d on map %d", shortcutID, mapID)
	}
	return nil
}

// RemoveReference empties the key on every row under mapID that holds it.
func (s *shortcutStore) RemoveReference(ctx context.Context, mapID int64, shortcut string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	return clearKey(ctx, s.store.db, mapID, shortcut)
}

// Delete removes the row matching both IDs; its media go with it.
func (s *shortcutStore) Delete(ctx context.Context, mapID, shortcutID int64) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	_, err := s.store.db.ExecContext(ctx, `
		DELETE FROM shortcuts WHERE id = ? AND map_id = ?
	`, shortcutID, mapID)
	if err != nil {
		return &domain.WriteError{Op: "deleting shortcut", Err: err}
	}
	return nil
}

// Assign frees the key under mapID and then edits or inserts, in one
// transaction, so two callers can never both end up holding the key.
func (s *shortcutStore) Assign(
	ctx context.Context,
	mapID int64,
	shortcutID *int64,
	description, shortcut string,
) (int64, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, &domain.WriteError{Op: "beginning assign", Err: err}
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := clearKey(ctx, tx, mapID, shortcut); err != nil {
		return 0, err
	}

	var id int64
	if shortcutID != nil {
		n, err := update(ctx, tx, mapID, *shortcutID, description, shortcut)
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, domain.ErrNotFound
		}
		id = *shortcutID
	} else {
		id, err = insert(ctx, tx, mapID, description, shortcut)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, &domain.WriteError{Op: "committing assign", Err: err}
	}
	return id, nil
}

func insert(ctx context.Context, db execer, mapID int64, description, shortcut string) (int64, error) {
	res, err := db.ExecContext(ctx, insertShortcut, mapID, description, shortcut)
	if err != nil {
		return 0, &domain.WriteError{Op: "saving shortcut", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, &domain.WriteError{Op: "reading shortcut id", Err: err}
	}
	return id, nil
}

func update(ctx context.Context, db execer, mapID, shortcutID int64, description, shortcut string) (int64, error) {
	res, err := db.ExecContext(ctx, updateShortcut, description, shortcut, shortcutID, mapID)
	if err != nil {
		return 0, &domain.WriteError{Op: "editing shortcut", Err: err}
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, &domain.WriteError{Op: "editing shortcut", Err: err}
	}
	return n, nil
}

func clearKey(ctx context.Context, db execer, mapID int64, shortcut string) error {
	if shortcut == "" {
		return nil
	}
	if _, err := db.ExecContext(ctx, clearShortcutKey, mapID, shortcut); err != nil {
		return &domain.WriteError{Op: "removing shortcut reference", Err: err}
	}
	return nil
}
