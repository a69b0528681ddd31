package bootstrap

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/inayah-hub/DASHBOARDS/config"
	apihttp "github.com/inayah-hub/DASHBOARDS/internal/api/http"
	"github.com/inayah-hub/DASHBOARDS/internal/projects/repository"
	"github.com/inayah-hub/DASHBOARDS/internal/storage/postgres"
	"github.com/inayah-hub/DASHBOARDS/internal/storage/sqlite"
)

// Store is the opened persistence layer.
type Store struct {
	Repo  repository.Repository
	Ping  apihttp.PingFunc
	close []func()
}

// Close releases every connection opened by OpenStore, last opened first.
func (s *Store) Close() {
	for i := len(s.close) - 1; i >= 0; i-- {
		s.close[i]()
	}
}

// OpenStore connects to the configured database, applies the schema and,
// when Redis is configured, wraps the repository with the list cache.
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	s := &Store{}

	switch strings.ToLower(cfg.Database.Driver) {
	case config.DriverSQLite:
		sdb, err := sqlite.NewConnection(cfg.Database.SQLitePath)
		if err != nil {
			return nil, err
		}
		s.close = append(s.close, func() { sdb.Close() })
		if err := sqlite.Migrate(ctx, sdb); err != nil {
			s.Close()
			return nil, err
		}
		s.Repo = repository.NewSQLiteRepository(sdb)
		s.Ping = sdb.PingContext
		logger.Info("using sqlite store", zap.String("path", cfg.Database.SQLitePath))

	default:
		pg, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		s.close = append(s.close, pg.Close)
		if err := pg.Migrate(ctx); err != nil {
			s.Close()
			return nil, err
		}
		s.Repo = repository.NewPostgresRepository(pg.Pool)
		s.Ping = pg.Ping
		logger.Info("using postgres store")
	}

	if cfg.Redis.Addr == "" {
		return s, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		// The cache is optional; a missing Redis only costs list latency.
		logger.Warn("redis unavailable, list cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		rdb.Close()
		return s, nil
	}
	s.close = append(s.close, func() { rdb.Close() })
	s.Repo = repository.NewCachedRepository(s.Repo, rdb, cfg.Redis.CacheTTL, logger)
	logger.Info("project list cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Redis.CacheTTL))

	return s, nil
}
