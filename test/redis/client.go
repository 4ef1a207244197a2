// Package redis provides a shared real-Redis client for integration tests:
// a testcontainer locally, or an external service container in CI via
// CI_REDIS_ADDR.
package redis

import (
	"context"
	"os"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// NewTestClient returns a go-redis client against a real Redis instance.
// The container/connection is cleaned up when the test ends.
func NewTestClient(t *testing.T) *goredis.Client {
	t.Helper()
	ctx := context.Background()

	addr := os.Getenv("CI_REDIS_ADDR")
	if addr == "" {
		container, err := tcredis.Run(ctx, "redis:7-alpine")
		require.NoError(t, err, "failed to start redis container")
		t.Cleanup(func() {
			if err := container.Terminate(context.Background()); err != nil {
				t.Logf("failed to terminate redis container: %v", err)
			}
		})
		endpoint, err := container.Endpoint(ctx, "")
		require.NoError(t, err)
		addr = endpoint
	} else {
		t.Log("Using external Redis from CI_REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(ctx).Err())
	return rdb
}
