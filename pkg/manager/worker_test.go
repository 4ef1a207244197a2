package manager

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/thegaltinator/alfred-fabric/pkg/streams"
	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

type fakeGraph struct {
	runs   []NormalizedEvent
	failOn string
}

func (f *fakeGraph) Run(ctx context.Context, evt NormalizedEvent) error {
	if evt.WBID == f.failOn {
		return errors.New("boom")
	}
	f.runs = append(f.runs, evt)
	return nil
}

func newTestWorker(t *testing.T, userID string, graph Graph) (*Worker, *whiteboard.Bus, *memCheckpointStore) {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	bus := whiteboard.New(streams.New(rdb), 0)
	checkpoints := newMemCheckpointStore()
	w := NewWorker(userID, "", bus, graph, checkpoints, nil)
	return w, bus, checkpoints
}

func TestProcessOneAdvancesCheckpointOnSuccess(t *testing.T) {
	graph := &fakeGraph{}
	w, bus, checkpoints := newTestWorker(t, "u1", graph)
	ctx := context.Background()

	id, err := bus.Append(ctx, "u1", "t1", map[string]any{
		"type": "prod.overrun", "block_id": "b1", "activity_label": "coding",
	})
	require.NoError(t, err)

	events, _, err := bus.Tail(ctx, "u1", "0")
	require.NoError(t, err)
	require.Len(t, events, 1)

	require.NoError(t, w.processOne(ctx, events[0]))
	require.Len(t, graph.runs, 1)

	cp, err := checkpoints.Get(ctx, "u1", "t1")
	require.NoError(t, err)
	require.Equal(t, id, cp.LastWBID)
}

func TestProcessOneDropsEmptyThreadID(t *testing.T) {
	graph := &fakeGraph{}
	w, _, _ := newTestWorker(t, "u1", graph)
	ctx := context.Background()

	evt := whiteboard.Event{ID: "1-0", UserID: "u1", Values: map[string]any{"type": "prod.overrun"}}
	require.NoError(t, w.processOne(ctx, evt))
	require.Empty(t, graph.runs)
}

func TestProcessOneDoesNotAdvanceCheckpointOnGraphError(t *testing.T) {
	graph := &fakeGraph{}
	w, bus, checkpoints := newTestWorker(t, "u1", graph)
	ctx := context.Background()

	id, err := bus.Append(ctx, "u1", "t1", map[string]any{
		"type": "prod.overrun", "block_id": "b1", "activity_label": "coding",
	})
	require.NoError(t, err)
	graph.failOn = id

	events, _, err := bus.Tail(ctx, "u1", "0")
	require.NoError(t, err)

	require.Error(t, w.processOne(ctx, events[0]))

	cp, err := checkpoints.Get(ctx, "u1", "t1")
	require.NoError(t, err)
	require.Empty(t, cp.LastWBID)
}

func TestProcessOneSkipsAlreadyProcessedWBID(t *testing.T) {
	graph := &fakeGraph{}
	w, bus, checkpoints := newTestWorker(t, "u1", graph)
	ctx := context.Background()

	id, err := bus.Append(ctx, "u1", "t1", map[string]any{
		"type": "prod.overrun", "block_id": "b1", "activity_label": "coding",
	})
	require.NoError(t, err)

	events, _, err := bus.Tail(ctx, "u1", "0")
	require.NoError(t, err)

	require.NoError(t, w.processOne(ctx, events[0]))
	require.Len(t, graph.runs, 1)

	// Replaying the identical event must be a no-op against the graph.
	require.NoError(t, w.processOne(ctx, events[0]))
	require.Len(t, graph.runs, 1)

	cp, err := checkpoints.Get(ctx, "u1", "t1")
	require.NoError(t, err)
	require.Equal(t, id, cp.LastWBID)
}

// storeWritingGraph persists through the shared checkpoint store while it
// runs, the way the real graph's side-effect nodes do.
type storeWritingGraph struct {
	checkpoints CheckpointStore
}

func (g *storeWritingGraph) Run(ctx context.Context, evt NormalizedEvent) error {
	cp, err := g.checkpoints.Get(ctx, evt.UserID, evt.ThreadID)
	if err != nil {
		return err
	}
	g.checkpoints.RecordSideEffect(ctx, &cp, SideEffectKey(evt.UserID, evt.ThreadID, evt.WBID, "planner_call"))
	cp.LastPlanID = "plan-1"
	cp.LastPlanVersion = "v1"
	cp.PendingPromptID = evt.WBID + ":prompt"
	return g.checkpoints.Save(ctx, cp)
}

func TestProcessOnePreservesGraphCheckpointWrites(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	bus := whiteboard.New(streams.New(rdb), 0)
	checkpoints := newMemCheckpointStore()
	graph := &storeWritingGraph{checkpoints: checkpoints}
	w := NewWorker("u1", "", bus, graph, checkpoints, nil)
	ctx := context.Background()

	id, err := bus.Append(ctx, "u1", "t1", map[string]any{
		"type": "prod.overrun", "block_id": "b1", "activity_label": "coding",
	})
	require.NoError(t, err)

	events, _, err := bus.Tail(ctx, "u1", "0")
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.NoError(t, w.processOne(ctx, events[0]))

	// Advancing LastWBID must not clobber what the graph persisted mid-run.
	cp, err := checkpoints.Get(ctx, "u1", "t1")
	require.NoError(t, err)
	require.Equal(t, id, cp.LastWBID)
	require.Equal(t, "plan-1", cp.LastPlanID)
	require.Equal(t, "v1", cp.LastPlanVersion)
	require.Equal(t, id+":prompt", cp.PendingPromptID)
	require.True(t, HasSideEffect(cp, SideEffectKey("u1", "t1", id, "planner_call")))
}
