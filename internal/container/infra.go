package container

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/marketplace-routes/internal/store"
	"go.uber.org/zap"
)

// LoggerPackage provides the zap logger. LogFormat "json" selects the production encoder.
func LoggerPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*zap.Logger, error) {
		opts := do.MustInvoke[*Options](i)

		if opts.LogFormat == "json" {
			return zap.NewProduction()
		}

		return zap.NewDevelopment()
	})
}

// RedisConn owns the shared Redis client and closes it on shutdown.
type RedisConn struct {
	Client *redis.Client
}

// Shutdown closes the client.
func (r *RedisConn) Shutdown() error {
	return r.Client.Close()
}

// RedisPackage provides the shared Redis client.
func RedisPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*RedisConn, error) {
		opts := do.MustInvoke[*Options](i)

		return &RedisConn{Client: redis.NewClient(&redis.Options{Addr: opts.RedisAddr})}, nil
	})

	do.Provide(i, func(i *do.Injector) (*redis.Client, error) {
		return do.MustInvoke[*RedisConn](i).Client, nil
	})
}

// PostgresConn owns the connection pool and closes it on shutdown.
type PostgresConn struct {
	Pool *pgxpool.Pool
}

// Shutdown closes the pool.
func (p *PostgresConn) Shutdown() error {
	p.Pool.Close()

	return nil
}

// PostgresPackage provides the PostgreSQL pool, creating the schema on first use.
func PostgresPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*PostgresConn, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)
		ctx := context.Background()

		pool, err := pgxpool.New(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}

		if err := store.Migrate(ctx, pool); err != nil {
			pool.Close()

			return nil, err
		}

		logger.Info("postgres ready")

		return &PostgresConn{Pool: pool}, nil
	})

	do.Provide(i, func(i *do.Injector) (*pgxpool.Pool, error) {
		return do.MustInvoke[*PostgresConn](i).Pool, nil
	})
}
