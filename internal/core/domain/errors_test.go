package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidInput))
}

func TestTypedErrors_Unwrap(t *testing.T) {
	cause := errors.New("disk I/O error")

	tests := []struct {
		name    string
		err     error
		message string
		is      func(error) bool
	}{
		{"init", &InitError{Op: "migrate", Err: cause}, "initialising store: migrate: disk I/O error", IsInitError},
		{"query", &QueryError{Op: "list maps", Err: cause}, "query list maps: disk I/O error", IsQueryError},
		{"write", &WriteError{Op: "save shortcut", Err: cause}, "write save shortcut: disk I/O error", IsWriteError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			assert.ErrorIs(t, tt.err, cause)

			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.True(t, tt.is(wrapped))
		})
	}
}

func TestTypedErrors_DoNotCrossMatch(t *testing.T) {
	err := &QueryError{Op: "list shortcuts", Err: errors.New("boom")}

	assert.False(t, IsWriteError(err))
	assert.False(t, IsInitError(err))
	assert.False(t, IsQueryError(errors.New("plain")))
}
