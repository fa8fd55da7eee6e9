package app

import (
	"context"
	"errors"
	"fmt"

	"onesat-market/internal/config"
	"onesat-market/internal/db"
	"onesat-market/internal/kv"
	"onesat-market/internal/logger"
	"onesat-market/internal/redis"
)

type Infra struct {
	Store   kv.Store
	closers []func() error
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	infra := &Infra{}

	switch cfg.StoreBackend {
	case config.BackendMemory:
		infra.Store = kv.NewMemoryStore()
		logger.Warn("using in-memory store; data is lost on restart", nil)

	case config.BackendRedis:
		client, err := redis.New(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		infra.Store = kv.NewRedisStore(client)
		infra.closers = append(infra.closers, client.Close)
		logger.Info("redis ready", map[string]any{"addr": cfg.RedisAddr})

	case config.BackendPostgres, config.BackendSQLite:
		d, err := db.Open(ctx, db.Dialect(cfg.StoreBackend), cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		infra.Store = kv.NewSQLStore(d)
		infra.closers = append(infra.closers, d.Close)
		logger.Info("database ready", map[string]any{"dialect": cfg.StoreBackend})

	default:
		return nil, fmt.Errorf("app: unknown store backend %q", cfg.StoreBackend)
	}

	return infra, nil
}

// Close releases backend connections in reverse order of acquisition.
func (i *Infra) Close() error {
	var errList []error
	for n := len(i.closers) - 1; n >= 0; n-- {
		if err := i.closers[n](); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
