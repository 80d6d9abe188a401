package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rl1809/pinkstock/internal/adapter/storage"
	"github.com/rl1809/pinkstock/internal/config"
	"github.com/rl1809/pinkstock/internal/core/service"
	"github.com/rl1809/pinkstock/internal/port"
)

// openInventory connects the configured backend and loads the inventory from it.
func openInventory(ctx context.Context, cfg config.Config, logger *zap.Logger) (*service.InventoryService, func() error, error) {
	kv, closeFn, err := openKeyValueStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	repo := storage.NewInventoryRepository(kv)
	return service.NewInventoryService(ctx, repo, logger), closeFn, nil
}

func openKeyValueStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (port.KeyValueStore, func() error, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		adapter, err := storage.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("opened sqlite store", zap.String("path", cfg.SQLitePath))
		return adapter, adapter.Close, nil

	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("failed to connect redis: %w", err)
		}
		logger.Debug("connected to redis", zap.String("addr", cfg.RedisAddr))
		return storage.NewRedisAdapter(rdb), rdb.Close, nil

	case config.BackendMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect mysql: %w", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to ping mysql: %w", err)
		}
		adapter := storage.NewMySQLAdapter(db)
		if err := adapter.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Debug("connected to mysql")
		return adapter, db.Close, nil

	case config.BackendMemory:
		return storage.NewMemoryAdapter(), func() error { return nil }, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}
