package repository

import (
	"context"

	"github.com/restoration-tracker/internal/domain"
)

// StreamRepository publishes and consumes project change events over a
// Redis stream with consumer-group semantics.
type StreamRepository interface {
	PublishProjectEvent(ctx context.Context, event domain.ProjectEvent) error
	CreateConsumerGroup(ctx context.Context, stream, group string) error
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)
	AckMessage(ctx context.Context, stream, group, messageID string) error
}
