package events

import (
	"context"

	completiondomain "reengage-backend/internal/completion/domain"
)

// NoopPublisher discards completion-changed events. Used when no Pub/Sub
// project is configured.
type NoopPublisher struct{}

// CompletionChanged performs no action
func (NoopPublisher) CompletionChanged(context.Context, string, string, string, completiondomain.State) error {
	return nil
}
