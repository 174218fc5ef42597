package persistence_service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/init-pkg/excel-users/domain/app"
)

// UsersService drains the staged batch into storage and reports the outcome.
type UsersService struct {
	store   app.RecordStore
	gateway app.PersistenceGateway
	events  app.EventPublisher
	log     *slog.Logger
}

var _ app.UsersService = &UsersService{}

func NewUsersService(store app.RecordStore, gateway app.PersistenceGateway, events app.EventPublisher, log *slog.Logger) *UsersService {
	return &UsersService{store, gateway, events, log}
}

// PersistStaged writes the batch staged at call time. The batch stays
// staged afterwards.
func (this *UsersService) PersistStaged(ctx context.Context) (int, error) {
	batch := this.store.Snapshot()
	this.log.Info("persisting staged batch", "rows", len(batch), "invalid", batch.InvalidCount())

	n, err := this.gateway.PersistAll(ctx, batch)
	if err != nil {
		payload := map[string]any{"persisted": n, "error": err.Error()}
		var perr *app.PersistenceError
		if errors.As(err, &perr) {
			payload["index"] = perr.Index
			payload["nid"] = perr.NID
		}
		this.publish(ctx, app.EventUsersPersistFailed, payload)
		return n, err
	}

	this.publish(ctx, app.EventUsersPersisted, map[string]any{"count": n})
	return n, nil
}

func (this *UsersService) publish(ctx context.Context, key string, payload any) {
	if err := this.events.Publish(ctx, key, payload); err != nil {
		this.log.Warn("publish event failed", "event", key, "error", err)
	}
}
