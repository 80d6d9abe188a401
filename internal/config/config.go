// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMySQL  = "mysql"
	BackendMemory = "memory"
)

type Config struct {
	Backend         string        `env:"PINKSTOCK_BACKEND" envDefault:"sqlite"`
	SQLitePath      string        `env:"PINKSTOCK_SQLITE_PATH" envDefault:"pinkstock.db"`
	RedisAddr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	MySQLDSN        string        `env:"MYSQL_DSN" envDefault:"root:root@tcp(localhost:3306)/pinkstock?parseTime=true"`
	HTTPAddr        string        `env:"PINKSTOCK_HTTP_ADDR" envDefault:":8080"`
	GRPCAddr        string        `env:"PINKSTOCK_GRPC_ADDR" envDefault:":50051"`
	LogLevel        string        `env:"PINKSTOCK_LOG_LEVEL" envDefault:"info"`
	ExportStem      string        `env:"PINKSTOCK_EXPORT_STEM" envDefault:"pinkstock_inventory_backup"`
	ShutdownTimeout time.Duration `env:"PINKSTOCK_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("PINKSTOCK_SQLITE_PATH is required for the sqlite backend")
		}
	case BackendRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis backend")
		}
	case BackendMySQL:
		if strings.TrimSpace(c.MySQLDSN) == "" {
			return fmt.Errorf("MYSQL_DSN is required for the mysql backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if strings.TrimSpace(c.HTTPAddr) == "" || strings.TrimSpace(c.GRPCAddr) == "" {
		return fmt.Errorf("listen addresses must not be empty")
	}
	if strings.TrimSpace(c.ExportStem) == "" {
		return fmt.Errorf("PINKSTOCK_EXPORT_STEM must not be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("PINKSTOCK_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}
