package memory

import (
	"context"

	"github.com/unifiedcommerce/shop-service/internal/application/auth"
)

// NoopPublisher stands in for RabbitMQ in dev and tests.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (NoopPublisher) PublishUserRegistered(ctx context.Context, evt auth.UserRegisteredEvent) error {
	return nil
}

func (NoopPublisher) PublishUserDeleted(ctx context.Context, evt auth.UserDeletedEvent) error {
	return nil
}
