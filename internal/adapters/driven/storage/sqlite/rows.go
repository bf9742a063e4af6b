package sqlite

import "github.com/custodia-labs/nades-cli/internal/core/domain"

// rowScanner is the subset of *sql.Rows the listing helpers need.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// collectRows decodes every row with scan. The first row that fails to
// decode aborts the listing with a *domain.QueryError; partial results
// are never returned.
func collectRows[T any](rows rowScanner, op string, scan func(rowScanner) (T, error)) ([]T, error) {
	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, &domain.QueryError{Op: "scanning " + op, Err: err}
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.QueryError{Op: "iterating " + op, Err: err}
	}

	return items, nil
}

func scanMap(row rowScanner) (domain.Map, error) {
	var m domain.Map
	err := row.Scan(&m.ID, &m.Name, &m.ImagePath)
	return m, err
}

func scanShortcut(row rowScanner) (domain.Shortcut, error) {
	var sc domain.Shortcut
	err := row.Scan(&sc.ID, &sc.MapID, &sc.Description, &sc.Shortcut)
	return sc, err
}
