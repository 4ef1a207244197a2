package manager_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thegaltinator/alfred-fabric/pkg/manager"
	testdb "github.com/thegaltinator/alfred-fabric/test/database"
)

// TestCheckpointSurvivesReconnect writes a checkpoint through one client
// and reads it back through a second, independent connection pool: the
// durable-across-restarts contract.
func TestCheckpointSurvivesReconnect(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	shared := testdb.NewSharedTestDB(t)
	ctx := context.Background()

	first := manager.NewEntCheckpointStore(shared.NewClient(t).Client)
	cp := manager.Checkpoint{
		UserID:          "u1",
		ThreadID:        "t1",
		LastWBID:        "1700000000000-5",
		LastPlanID:      "plan-9",
		LastPlanVersion: "v2",
		SideEffects:     []string{manager.SideEffectKey("u1", "t1", "1700000000000-5", "planner_call")},
	}
	require.NoError(t, first.Save(ctx, cp))

	second := manager.NewEntCheckpointStore(shared.NewClient(t).Client)
	got, err := second.Get(ctx, "u1", "t1")
	require.NoError(t, err)
	require.Equal(t, cp.LastWBID, got.LastWBID)
	require.Equal(t, cp.LastPlanID, got.LastPlanID)
	require.Equal(t, cp.SideEffects, got.SideEffects)
	require.True(t, manager.ShouldSkip("1700000000000-5", got))
	require.False(t, manager.ShouldSkip("1700000000000-6", got))
}

// TestThreadsUpdateIndependently saves checkpoints for many threads of one
// user concurrently; each thread's row lands intact.
func TestThreadsUpdateIndependently(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	shared := testdb.NewSharedTestDB(t)
	store := manager.NewEntCheckpointStore(shared.NewClient(t).Client)
	ctx := context.Background()

	const threads = 8
	var wg sync.WaitGroup
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			threadID := fmt.Sprintf("t%d", i)
			err := store.Save(ctx, manager.Checkpoint{
				UserID:   "u1",
				ThreadID: threadID,
				LastWBID: fmt.Sprintf("100-%d", i),
			})
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for i := 0; i < threads; i++ {
		got, err := store.Get(ctx, "u1", fmt.Sprintf("t%d", i))
		require.NoError(t, err)
		require.Equal(t, fmt.Sprintf("100-%d", i), got.LastWBID)
	}
}
