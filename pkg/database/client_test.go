package database

import (
	"context"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/thegaltinator/alfred-fabric/ent"
	"github.com/thegaltinator/alfred-fabric/ent/proposal"
)

// newTestClient creates a test database client inline (avoiding import cycle with test/database)
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts("../../deploy/postgres-init/01-init.sql"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	drv, err := sql.Open(dialect.Postgres, connStr)
	require.NoError(t, err)

	db := drv.DB()
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Test basic connectivity
	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	// Test health check
	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
	assert.Greater(t, health.RoundTrip, time.Duration(0))
}

func TestCheckpointRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.Checkpoint.Create().
		SetID("u1:t1").
		SetUserID("u1").
		SetThreadID("t1").
		SetLastWbIDProcessed("1700000000000-0").
		SetLastPlanID("plan-1").
		SetLastPlanVersion("v3").
		SetPendingPromptID("a1").
		SetSideEffectsLog([]string{"u1:t1:1700000000000-0:planner_call"}).
		Exec(ctx)
	require.NoError(t, err)

	row, err := client.Checkpoint.Get(ctx, "u1:t1")
	require.NoError(t, err)
	assert.Equal(t, "1700000000000-0", row.LastWbIDProcessed)
	assert.Equal(t, "plan-1", row.LastPlanID)
	assert.Equal(t, "v3", row.LastPlanVersion)
	assert.Equal(t, "a1", row.PendingPromptID)
	assert.Equal(t, []string{"u1:t1:1700000000000-0:planner_call"}, row.SideEffectsLog)
}

func TestProposalStatusIndexQuery(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	for i, status := range []string{"pending", "pending", "stale"} {
		err := client.Proposal.Create().
			SetID(string(rune('a'+i)) + "-proposal").
			SetUserID("u1").
			SetThreadID("t1").
			SetPrimaryEventID("ev1").
			SetPlanJSON("{}").
			SetStatus(proposal.Status(status)).
			Exec(ctx)
		require.NoError(t, err)
	}

	// The (user, status) index backs this lookup.
	rows, err := client.DB().QueryContext(ctx,
		`SELECT id FROM proposals WHERE user_id = $1 AND status = $2 ORDER BY id`,
		"u1", "pending",
	)
	require.NoError(t, err)
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	assert.Equal(t, []string{"a-proposal", "b-proposal"}, ids)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "test",
				Database:     "test",
				SSLMode:      "disable",
				MaxOpenConns: 10,
				MaxIdleConns: 5,
			},
			wantErr: false,
		},
		{
			name: "missing password",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "",
				Database:     "test",
				MaxOpenConns: 10,
				MaxIdleConns: 5,
			},
			wantErr: true,
		},
		{
			name: "idle conns exceed max conns",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "test",
				Database:     "test",
				MaxOpenConns: 5,
				MaxIdleConns: 10,
			},
			wantErr: true,
		},
		{
			name: "zero max open conns",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "test",
				Database:     "test",
				MaxOpenConns: 0,
				MaxIdleConns: 0,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
