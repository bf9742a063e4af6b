package driving

import "context"

// LogService records messages sent by the presentation layer.
type LogService interface {
	// Log writes a timestamped message and returns its event ID.
	Log(ctx context.Context, message string) (string, error)
}
