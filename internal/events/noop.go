package events

import (
	"context"

	"github.com/sheikh-saqib/payments-engine/internal/interfaces"
)

// NoopPublisher discards every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event any) error {
	return nil
}

var _ interfaces.EventPublisher = NoopPublisher{}
