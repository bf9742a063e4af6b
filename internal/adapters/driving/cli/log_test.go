package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/nades-cli/internal/logger"
)

func TestLogCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	var events bytes.Buffer
	logger.SetOutput(&events)
	defer logger.SetOutput(os.Stderr)

	out, err := executeCommand("log", "smoke", "landed", "late")
	require.NoError(t, err)

	assert.Contains(t, out, `"eventId"`)
	assert.Contains(t, events.String(), "] smoke landed late")
}

func TestLogCmd_RequiresMessage(t *testing.T) {
	_, err := executeCommand("log")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestLogCmd_ErrorsWithoutServices(t *testing.T) {
	restore := clearServices()
	defer restore()

	_, err := executeCommand("log", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
