package services

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/nades-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/nades-cli/internal/core/domain"
	"github.com/custodia-labs/nades-cli/internal/logger"
	"github.com/custodia-labs/nades-cli/internal/metrics"
)

func newTestMapStore() *memory.MapStore {
	return memory.NewMapStore(
		domain.Map{ID: 1, Name: "Mirage", ImagePath: "assets/maps/mirage.png"},
		domain.Map{ID: 2, Name: "Dust2", ImagePath: "assets/maps/dust2.png"},
	)
}

// scrape returns the recorder's exposition text.
func scrape(t *testing.T, r *metrics.Recorder) string {
	t.Helper()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

// ==================== MapService ====================

func TestMapService_List(t *testing.T) {
	recorder := metrics.NewRecorder()
	service := NewMapService(newTestMapStore(), recorder)

	maps, err := service.List(context.Background())

	require.NoError(t, err)
	require.Len(t, maps, 2)
	assert.Equal(t, "Mirage", maps[0].Name)
	assert.Contains(t, scrape(t, recorder),
		`nades_repository_operations_total{operation="list_maps",outcome="ok"} 1`)
}

func TestMapService_NilStore(t *testing.T) {
	_, err := NewMapService(nil, nil).List(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

// ==================== ShortcutService ====================

func newTestShortcutService(recorder *metrics.Recorder) *ShortcutService {
	return NewShortcutService(memory.NewShortcutStore(newTestMapStore()), recorder)
}

func TestShortcutService_SaveListEdit(t *testing.T) {
	service := newTestShortcutService(nil)
	ctx := context.Background()

	id, err := service.Save(ctx, 1, "jump throw", "ctrl+x")
	require.NoError(t, err)

	require.NoError(t, service.Edit(ctx, 1, id, "new desc", "ctrl+y"))

	list, err := service.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.Shortcut{{ID: id, MapID: 1, Description: "new desc", Shortcut: "ctrl+y"}}, list)
}

func TestShortcutService_RemoveReferenceAndDelete(t *testing.T) {
	service := newTestShortcutService(nil)
	ctx := context.Background()

	id, err := service.Save(ctx, 1, "a", "f1")
	require.NoError(t, err)

	require.NoError(t, service.RemoveReference(ctx, 1, "f1"))
	list, err := service.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list[0].Shortcut)

	require.NoError(t, service.Delete(ctx, 1, id))
	list, err = service.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestShortcutService_Assign(t *testing.T) {
	service := newTestShortcutService(nil)
	ctx := context.Background()

	first, err := service.Assign(ctx, 1, nil, "first", "F5")
	require.NoError(t, err)
	second, err := service.Assign(ctx, 1, nil, "second", "F5")
	require.NoError(t, err)

	list, err := service.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first, list[0].ID)
	assert.Empty(t, list[0].Shortcut)
	assert.Equal(t, second, list[1].ID)
	assert.Equal(t, "F5", list[1].Shortcut)

	again, err := service.Assign(ctx, 1, &first, "first", "F5")
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestShortcutService_Assign_UnknownID(t *testing.T) {
	service := newTestShortcutService(nil)
	missing := int64(77)

	_, err := service.Assign(context.Background(), 1, &missing, "ghost", "F5")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShortcutService_InvalidInput(t *testing.T) {
	service := newTestShortcutService(nil)
	ctx := context.Background()
	zero := int64(0)

	tests := []struct {
		name string
		call func() error
	}{
		{"list map zero", func() error { _, err := service.List(ctx, 0); return err }},
		{"save negative map", func() error { _, err := service.Save(ctx, -1, "a", "f1"); return err }},
		{"edit zero shortcut", func() error { return service.Edit(ctx, 1, 0, "a", "f1") }},
		{"edit zero map", func() error { return service.Edit(ctx, 0, 1, "a", "f1") }},
		{"unbind zero map", func() error { return service.RemoveReference(ctx, 0, "f1") }},
		{"delete zero shortcut", func() error { return service.Delete(ctx, 1, 0) }},
		{"assign empty key", func() error { _, err := service.Assign(ctx, 1, nil, "a", ""); return err }},
		{"assign zero id", func() error { _, err := service.Assign(ctx, 1, &zero, "a", "f1"); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), domain.ErrInvalidInput)
		})
	}
}

func TestShortcutService_NilStore(t *testing.T) {
	service := NewShortcutService(nil, nil)
	ctx := context.Background()

	_, err := service.List(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = service.Save(ctx, 1, "a", "b")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	_, err = service.Assign(ctx, 1, nil, "a", "b")
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.ErrorIs(t, service.Edit(ctx, 1, 1, "a", "b"), domain.ErrNotImplemented)
	assert.ErrorIs(t, service.RemoveReference(ctx, 1, "b"), domain.ErrNotImplemented)
	assert.ErrorIs(t, service.Delete(ctx, 1, 1), domain.ErrNotImplemented)
}

func TestShortcutService_RecordsOutcomes(t *testing.T) {
	recorder := metrics.NewRecorder()
	service := newTestShortcutService(recorder)
	ctx := context.Background()

	_, err := service.Save(ctx, 1, "a", "f1")
	require.NoError(t, err)
	_, err = service.Save(ctx, 99, "orphan", "f1")
	require.Error(t, err)
	assert.True(t, domain.IsWriteError(err))

	body := scrape(t, recorder)
	assert.Contains(t, body, `nades_repository_operations_total{operation="save_shortcut",outcome="ok"} 1`)
	assert.Contains(t, body, `nades_repository_operations_total{operation="save_shortcut",outcome="error"} 1`)
	assert.Contains(t, body, `nades_repository_operation_duration_seconds_count{operation="save_shortcut"} 2`)
}

func TestShortcutService_DebugLogging(t *testing.T) {
	buf := captureLog(t)
	logger.SetVerbose(true)
	t.Cleanup(func() { logger.SetVerbose(false) })

	service := newTestShortcutService(nil)
	_, err := service.Save(context.Background(), 1, "a", "f1")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "[DEBUG] saved shortcut 1 on map 1")
}

// ==================== LogService ====================

func TestLogService_Log(t *testing.T) {
	buf := captureLog(t)

	id, err := NewLogService().Log(context.Background(), "grenade thrown")

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Contains(t, buf.String(), "[EVENT "+id+"] grenade thrown")
}

func TestLogService_EmptyMessage(t *testing.T) {
	_, err := NewLogService().Log(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
