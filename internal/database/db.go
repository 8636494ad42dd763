package database

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s environment variable is required", key)
	}
	return value, nil
}

// Connect builds the connection pool from DB_* environment variables. The
// pool is the process's single store handle; callers own its lifecycle and
// pass it down explicitly.
func Connect(ctx context.Context) (*pgxpool.Pool, error) {
	host, err := requireEnv("DB_HOST")
	if err != nil {
		return nil, err
	}
	port, err := requireEnv("DB_PORT")
	if err != nil {
		return nil, err
	}
	user, err := requireEnv("DB_USERNAME")
	if err != nil {
		return nil, err
	}
	password, err := requireEnv("DB_PASSWORD")
	if err != nil {
		return nil, err
	}
	database, err := requireEnv("DB_DATABASE")
	if err != nil {
		return nil, err
	}

	userInfo := url.UserPassword(user, password)
	dsn := fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=disable",
		userInfo.String(),
		host,
		port,
		url.PathEscape(database),
	)

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.WithFields(logrus.Fields{"host": host, "database": database}).
		Info("database connection pool established")
	return pool, nil
}
