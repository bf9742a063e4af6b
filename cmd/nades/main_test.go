package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/nades-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/nades-cli/internal/core/domain"
)

func TestOpenServices_FlagPath(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "data", "app.db")

	svc, err := openServices(cli.Settings{
		ConfigPath: filepath.Join(dir, "config.toml"),
		DBPath:     dbPath,
	})
	require.NoError(t, err)
	defer svc.Close()

	assert.FileExists(t, dbPath)

	maps, err := svc.Map.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, maps, 9)
}

func TestOpenServices_ConfigPath(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "from-config.db")
	configPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[database]\npath = \""+filepath.ToSlash(dbPath)+"\"\n"), 0600))

	svc, err := openServices(cli.Settings{ConfigPath: configPath})
	require.NoError(t, err)
	defer svc.Close()

	assert.FileExists(t, dbPath)

	id, err := svc.Shortcut.Save(context.Background(), 1, "jump throw", "ctrl+x")
	require.NoError(t, err)
	assert.Positive(t, id)
}

func TestOpenServices_CorruptDatabase(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "app.db")
	require.NoError(t, os.WriteFile(dbPath, bytes.Repeat([]byte("x"), 4096), 0600))

	_, err := openServices(cli.Settings{ConfigPath: filepath.Join(dir, "config.toml"), DBPath: dbPath})

	require.Error(t, err)
	assert.True(t, domain.IsInitError(err))
}

func TestOpenServices_BadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[broken"), 0600))

	_, err := openServices(cli.Settings{ConfigPath: configPath})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}
