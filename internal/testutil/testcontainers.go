//go:build integration

// Package testutil provides testcontainers setup for integration tests.
package testutil

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// Container wraps a started testcontainer and the address clients use to reach it.
// For MongoDB and Postgres the address is a connection URI; for Redis it is host:port.
type Container struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB creates and starts a MongoDB testcontainer.
// For better performance, use the shared variants from test_container.go with TestMain.
func SetupMongoDB(ctx context.Context) (*Container, error) {
	mongoContainer, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		_ = mongoContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &Container{Container: mongoContainer, URI: uri}, nil
}

// SetupPostgres creates and starts a Postgres testcontainer with an "invoices" database.
func SetupPostgres(ctx context.Context) (*Container, error) {
	pgContainer, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("invoices"),
		tcpostgres.WithUsername("invoice"),
		tcpostgres.WithPassword("invoice"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start Postgres container: %w", err)
	}

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &Container{Container: pgContainer, URI: dsn}, nil
}

// SetupRedis creates and starts a Redis testcontainer. URI holds host:port.
func SetupRedis(ctx context.Context) (*Container, error) {
	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		return nil, fmt.Errorf("failed to start Redis container: %w", err)
	}

	addr, err := redisContainer.Endpoint(ctx, "")
	if err != nil {
		_ = redisContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get endpoint: %w", err)
	}

	return &Container{Container: redisContainer, URI: addr}, nil
}

// Cleanup terminates the container.
func (c *Container) Cleanup(ctx context.Context) error {
	if c.Container != nil {
		if err := c.Container.Terminate(ctx); err != nil {
			return fmt.Errorf("failed to terminate container: %w", err)
		}
	}
	return nil
}
