package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/nades-cli/internal/core/domain"
	"github.com/custodia-labs/nades-cli/internal/core/ports/driving"
	"github.com/custodia-labs/nades-cli/internal/logger"
)

// Ensure LogService implements the interface.
var _ driving.LogService = (*LogService)(nil)

// LogService forwards presentation-layer messages to the event log.
type LogService struct{}

// NewLogService creates a new log service.
func NewLogService() *LogService {
	return &LogService{}
}

// Log writes message as an event and returns the event ID.
func (s *LogService) Log(_ context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", domain.ErrInvalidInput
	}
	return logger.Event(message), nil
}
