package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/nades-cli/internal/core/domain"
)

// fakeRows replays a fixed set of rows; a nil entry fails to decode.
type fakeRows struct {
	rows   [][]any
	pos    int
	iterEr error
}

func (f *fakeRows) Next() bool {
	if f.pos >= len(f.rows) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	row := f.rows[f.pos-1]
	if row == nil {
		return errors.New("converting NULL to string is unsupported")
	}
	for i, v := range row {
		switch d := dest[i].(type) {
		case *int64:
			*d = v.(int64)
		case *string:
			*d = v.(string)
		}
	}
	return nil
}

func (f *fakeRows) Err() error { return f.iterEr }

func TestCollectRows_Maps(t *testing.T) {
	rows := &fakeRows{rows: [][]any{
		{int64(1), "Mirage", "assets/maps/mirage.png"},
		{int64(2), "Dust2", "assets/maps/dust2.png"},
	}}

	maps, err := collectRows(rows, "maps", scanMap)

	require.NoError(t, err)
	assert.Equal(t, []domain.Map{
		{ID: 1, Name: "Mirage", ImagePath: "assets/maps/mirage.png"},
		{ID: 2, Name: "Dust2", ImagePath: "assets/maps/dust2.png"},
	}, maps)
}

func TestCollectRows_EmptyIsNotNil(t *testing.T) {
	maps, err := collectRows(&fakeRows{}, "maps", scanMap)

	require.NoError(t, err)
	assert.NotNil(t, maps)
	assert.Empty(t, maps)
}

func TestCollectRows_DecodeFailureAborts(t *testing.T) {
	rows := &fakeRows{rows: [][]any{
		{int64(1), int64(1), "jump throw", "ctrl+x"},
		nil,
		{int64(3), int64(1), "never reached", "f3"},
	}}

	shortcuts, err := collectRows(rows, "shortcuts", scanShortcut)

	require.Error(t, err)
	assert.Nil(t, shortcuts)
	assert.True(t, domain.IsQueryError(err))
	assert.Contains(t, err.Error(), "scanning shortcuts")
	assert.Equal(t, 2, rows.pos, "iteration stops at the bad row")
}

func TestCollectRows_IterationError(t *testing.T) {
	rows := &fakeRows{
		rows:   [][]any{{int64(1), "Mirage", "assets/maps/mirage.png"}},
		iterEr: errors.New("disk I/O error"),
	}

	maps, err := collectRows(rows, "maps", scanMap)

	require.Error(t, err)
	assert.Nil(t, maps)
	assert.Contains(t, err.Error(), "iterating maps")
	assert.Contains(t, err.Error(), "disk I/O error")
}
