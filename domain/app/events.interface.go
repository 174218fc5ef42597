package app

import "context"

const (
	EventBatchStaged        = "batch.staged"
	EventUsersPersisted     = "users.persisted"
	EventUsersPersistFailed = "users.persist_failed"
)

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}
