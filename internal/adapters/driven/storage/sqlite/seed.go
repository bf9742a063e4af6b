package sqlite

import (
	"context"
	"fmt"
)

// seedMap is one reference map inserted by seed.
type seedMap struct {
	name      string
	imagePath string
}

// defaultMaps are the reference maps, in ID order on a fresh database.
var defaultMaps = []seedMap{
	{"Mirage", "assets/maps/mirage.png"},
	{"Dust2", "assets/maps/dust2.png"},
	{"Inferno", "assets/maps/inferno.png"},
	{"Nuke", "assets/maps/nuke.png"},
	{"Overpass", "assets/maps/overpass.png"},
	{"Vertigo", "assets/maps/vertigo.png"},
	{"Ancient", "assets/maps/ancient.png"},
	{"Train", "assets/maps/train.png"},
	{"Anubis", "assets/maps/anubis.png"},
}

// insertMapIfAbsent is keyed on name; maps.name has no UNIQUE index.
const insertMapIfAbsent = `
	INSERT INTO maps (name, image_path)
	SELECT ?, ?
	WHERE NOT EXISTS (SELECT 1 FROM maps WHERE name = ?)
`

// seed inserts any reference map that is not present yet.
func (s *Store) seed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx, insertMapIfAbsent)
	if err != nil {
		return fmt.Errorf("preparing seed statement: %w", err)
	}
	defer stmt.Close()

	for _, m := range defaultMaps {
		if _, err := stmt.ExecContext(ctx, m.name, m.imagePath, m.name); err != nil {
			return fmt.Errorf("seeding map %s: %w", m.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}
