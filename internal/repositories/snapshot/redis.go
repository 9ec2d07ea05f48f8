package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/emberfall/ascent/internal/errors"
)

// RedisRepoConfig configures the Redis-backed repository.
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// NewRedisRepository creates a new Redis-backed snapshot repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = &RealTimeProvider{}
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: cfg.TimeProvider,
	}
}

// key generates the Redis key for a snapshot
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("snapshot:%s", id)
}

// Load returns the stored snapshot. A missing key or a document that
// no longer parses both come back as nil so play restarts clean.
func (r *redisRepo) Load(ctx context.Context, id string) (*Snapshot, error) {
	if id == "" {
		return nil, errors.InvalidArgument("snapshot ID is required")
	}

	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to load snapshot '%s'", id)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("Discarding corrupt snapshot '%s': %v", id, err)
		return nil, nil
	}
	return &snap, nil
}

// Save stores the snapshot, stamping SavedAt
func (r *redisRepo) Save(ctx context.Context, snap *Snapshot) error {
	if snap == nil {
		return errors.InvalidArgument("snapshot cannot be nil")
	}
	if snap.ID == "" {
		return errors.InvalidArgument("snapshot ID is required")
	}

	snap.SavedAt = r.timeProvider.Now()

	data, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "failed to marshal snapshot")
	}

	if err := r.client.Set(ctx, r.key(snap.ID), string(data), 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to save snapshot '%s'", snap.ID)
	}
	return nil
}

// Clear removes the stored snapshot
func (r *redisRepo) Clear(ctx context.Context, id string) error {
	if id == "" {
		return errors.InvalidArgument("snapshot ID is required")
	}

	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return errors.Wrapf(err, "failed to clear snapshot '%s'", id)
	}
	return nil
}
