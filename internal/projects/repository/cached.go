package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/inayah-hub/DASHBOARDS/internal/projects/domain"
)

const (
	listCacheKey    = "kpi:projects:list"
	listVersionKey  = "kpi:projects:ver"
	defaultCacheTTL = 30 * time.Second
)

// CachedRepository keeps the full project list in Redis and drops it after
// every successful mutation. Redis failures are logged and the call falls
// through to the wrapped repository.
//
// Every mutation bumps listVersionKey. A list loaded from the store is only
// cached if the version is unchanged since before the load, so a read that
// raced a write never repopulates the cache with the old list.
type CachedRepository struct {
	next   Repository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedRepository(next Repository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedRepository {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedRepository{next: next, client: client, ttl: ttl, logger: logger}
}

func (r *CachedRepository) List(ctx context.Context) ([]domain.Project, error) {
	data, err := r.client.Get(ctx, listCacheKey).Bytes()
	switch {
	case err == nil:
		var projects []domain.Project
		uerr := json.Unmarshal(data, &projects)
		if uerr == nil {
			return projects, nil
		}
		r.logger.Warn("discarding unreadable project list cache", zap.Error(uerr))
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("project list cache read failed", zap.Error(err))
	}

	version, err := r.version(ctx)
	if err != nil {
		r.logger.Warn("project list version read failed", zap.Error(err))
		return r.next.List(ctx)
	}

	projects, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(projects); err == nil {
		if err := r.store(ctx, version, data); err != nil {
			r.logger.Warn("project list cache write failed", zap.Error(err))
		}
	}
	return projects, nil
}

func (r *CachedRepository) version(ctx context.Context) (int64, error) {
	v, err := r.client.Get(ctx, listVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// store writes the list only while listVersionKey still equals version.
func (r *CachedRepository) store(ctx context.Context, version int64, data []byte) error {
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, listVersionKey).Int64()
		if errors.Is(err, redis.Nil) {
			current, err = 0, nil
		}
		if err != nil {
			return err
		}
		if current != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, listCacheKey, data, r.ttl)
			return nil
		})
		return err
	}, listVersionKey)
	if errors.Is(err, redis.TxFailedErr) {
		// A mutation landed between the check and the write.
		return nil
	}
	return err
}

func (r *CachedRepository) Create(ctx context.Context, in domain.NewProject) (*domain.Project, error) {
	p, err := r.next.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return p, nil
}

func (r *CachedRepository) Update(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error) {
	p, err := r.next.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return p, nil
}

func (r *CachedRepository) Delete(ctx context.Context, id int64) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedRepository) invalidate(ctx context.Context) {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, listVersionKey)
		pipe.Del(ctx, listCacheKey)
		return nil
	})
	if err != nil {
		r.logger.Warn("project list cache invalidation failed", zap.Error(err))
	}
}
