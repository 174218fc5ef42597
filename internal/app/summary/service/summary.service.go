package summary_service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/init-pkg/excel-users/domain/app"
	"github.com/init-pkg/excel-users/internal/config"

	"github.com/redis/go-redis/v9"
)

// New picks the redis store when a client is configured, memory otherwise.
func New(client *redis.Client, cfg *config.Config) app.SummaryStore {
	if client == nil {
		return NewMemory()
	}
	return NewRedis(client, cfg.Infrastructure.Redis.Key)
}

type RedisSummaryStore struct {
	client *redis.Client
	key    string
}

func NewRedis(client *redis.Client, key string) *RedisSummaryStore {
	return &RedisSummaryStore{client, key}
}

func (this *RedisSummaryStore) Save(ctx context.Context, summary app.IngestionSummary) error {
	b, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	if err := this.client.Set(ctx, this.key, b, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", this.key, err)
	}
	return nil
}

func (this *RedisSummaryStore) Latest(ctx context.Context) (*app.IngestionSummary, error) {
	b, err := this.client.Get(ctx, this.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, app.ErrNoSummary
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", this.key, err)
	}

	var summary app.IngestionSummary
	if err := json.Unmarshal(b, &summary); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	return &summary, nil
}

type MemorySummaryStore struct {
	latest atomic.Pointer[app.IngestionSummary]
}

func NewMemory() *MemorySummaryStore {
	return &MemorySummaryStore{}
}

func (this *MemorySummaryStore) Save(ctx context.Context, summary app.IngestionSummary) error {
	this.latest.Store(&summary)
	return nil
}

func (this *MemorySummaryStore) Latest(ctx context.Context) (*app.IngestionSummary, error) {
	p := this.latest.Load()
	if p == nil {
		return nil, app.ErrNoSummary
	}
	summary := *p
	return &summary, nil
}
