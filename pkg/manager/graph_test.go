package manager

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/thegaltinator/alfred-fabric/pkg/planner"
	"github.com/thegaltinator/alfred-fabric/pkg/streams"
	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

// stubPlanner answers planner_call without a network round-trip.
type stubPlanner struct{}

func (stubPlanner) Run(ctx context.Context, req planner.RunRequest) (planner.RunResponse, error) {
	return planner.RunResponse{PlanID: "plan-1", Version: "v1"}, nil
}

type appendCall struct {
	userID, threadID string
	values           map[string]any
}

type capturingBus struct {
	appends []appendCall
}

func (c *capturingBus) AppendWithThread(ctx context.Context, userID, threadID string, values map[string]any) (string, error) {
	c.appends = append(c.appends, appendCall{userID: userID, threadID: threadID, values: values})
	return "wb-fake-id", nil
}

// memCheckpointStore is an in-memory CheckpointStore for graph unit tests,
// standing in for EntCheckpointStore so routing/idempotency tests don't need
// a database.
type memCheckpointStore struct {
	rows map[string]Checkpoint
}

func newMemCheckpointStore() *memCheckpointStore {
	return &memCheckpointStore{rows: map[string]Checkpoint{}}
}

func (m *memCheckpointStore) Get(ctx context.Context, userID, threadID string) (Checkpoint, error) {
	if cp, ok := m.rows[checkpointID(userID, threadID)]; ok {
		return cp, nil
	}
	return Checkpoint{UserID: userID, ThreadID: threadID}, nil
}

func (m *memCheckpointStore) Save(ctx context.Context, cp Checkpoint) error {
	m.rows[checkpointID(cp.UserID, cp.ThreadID)] = cp
	return nil
}

func (m *memCheckpointStore) RecordSideEffect(ctx context.Context, cp *Checkpoint, key string) bool {
	if HasSideEffect(*cp, key) {
		return false
	}
	cp.SideEffects = append(cp.SideEffects, key)
	return true
}

func newGraphUnderTest(t *testing.T, bus Bus, checkpoints CheckpointStore) *ManagerGraph {
	t.Helper()
	g, err := NewManagerGraph(GraphConfig{
		PlannerURL:     "http://example.invalid/planner",
		ProdControlURL: "http://example.invalid/prod",
		Bus:            bus,
		Planner:        stubPlanner{},
		Checkpoints:    checkpoints,
	})
	require.NoError(t, err)
	return g
}

func TestProdOverrunRoutesToExactlyOnePrompt(t *testing.T) {
	bus := &capturingBus{}
	g := newGraphUnderTest(t, bus, nil)

	evt := NormalizedEvent{
		WBID:     "wb-1",
		UserID:   "u1",
		ThreadID: "t1",
		Event: Event{
			Source:  "prod",
			Kind:    "overrun",
			Payload: map[string]any{"block_id": "b1", "activity_label": "coding"},
		},
	}

	require.NoError(t, g.Run(context.Background(), evt))
	require.Len(t, bus.appends, 1)

	call := bus.appends[0]
	require.Equal(t, "u1", call.userID)
	require.Equal(t, "t1", call.threadID)
	require.Equal(t, "manager.prompt", call.values["type"])
	require.Equal(t, "prod", call.values["source"])
	require.Equal(t, "overrun", call.values["kind"])
	require.Equal(t, "wb-1", call.values["wb_parent_id"])
	require.Contains(t, call.values["content"], "coding")
}

func TestRoutingBySource(t *testing.T) {
	cases := []struct {
		name    string
		evt     NormalizedEvent
		wantAny bool
	}{
		{
			name: "calendar branch without today impact stays quiet",
			evt: NormalizedEvent{
				WBID: "wb-cal", UserID: "u1", ThreadID: "t1",
				Event: Event{Source: "calendar", Kind: "plan.proposed", Payload: map[string]any{"summary": "moved", "impact": "later"}},
			},
			wantAny: false,
		},
		{
			name: "email branch always prompts",
			evt: NormalizedEvent{
				WBID: "wb-email", UserID: "u1", ThreadID: "t1",
				Event: Event{Source: "email", Kind: "reply_needed", Payload: map[string]any{"summary": "invoice"}},
			},
			wantAny: true,
		},
		{
			name: "unknown source is dropped silently",
			evt: NormalizedEvent{
				WBID: "wb-unknown", UserID: "u1", ThreadID: "t1",
				Event: Event{Source: "bogus", Kind: "whatever"},
			},
			wantAny: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bus := &capturingBus{}
			g := newGraphUnderTest(t, bus, nil)
			require.NoError(t, g.Run(context.Background(), tc.evt))
			if tc.wantAny {
				require.NotEmpty(t, bus.appends)
			} else {
				require.Empty(t, bus.appends)
			}
		})
	}
}

func TestEmitPromptIsIdempotentPerWBID(t *testing.T) {
	bus := &capturingBus{}
	checkpoints := newMemCheckpointStore()
	g := newGraphUnderTest(t, bus, checkpoints)

	evt := NormalizedEvent{
		WBID:     "wb-dup",
		UserID:   "u1",
		ThreadID: "t1",
		Event: Event{
			Source:  "prod",
			Kind:    "overrun",
			Payload: map[string]any{"block_id": "b1", "activity_label": "coding"},
		},
	}

	require.NoError(t, g.Run(context.Background(), evt))
	require.NoError(t, g.Run(context.Background(), evt))
	require.NoError(t, g.Run(context.Background(), evt))

	require.Len(t, bus.appends, 1, "replaying the same wb_id must not duplicate the prompt")
}

func TestUserActionRefocusClearsPendingPromptWithoutPlannerCall(t *testing.T) {
	bus := &capturingBus{}
	checkpoints := newMemCheckpointStore()
	require.NoError(t, checkpoints.Save(context.Background(), Checkpoint{
		UserID: "u1", ThreadID: "t1", PendingPromptID: "wb-1:prompt",
	}))
	g := newGraphUnderTest(t, bus, checkpoints)

	evt := NormalizedEvent{
		WBID:     "wb-2",
		UserID:   "u1",
		ThreadID: "t1",
		Event: Event{
			Source:  "manager",
			Kind:    "user_action",
			Payload: map[string]any{"action_id": "a1", "choice": "refocus"},
		},
	}

	require.NoError(t, g.Run(context.Background(), evt))
	require.Empty(t, bus.appends, "refocus must not call the planner or emit a prompt")

	cp, err := checkpoints.Get(context.Background(), "u1", "t1")
	require.NoError(t, err)
	require.Empty(t, cp.PendingPromptID)
}

type fakeConfirmer struct {
	confirms []string
	err      error
}

func (f *fakeConfirmer) Confirm(ctx context.Context, proposalID, threadID string) error {
	if f.err != nil {
		return f.err
	}
	f.confirms = append(f.confirms, proposalID)
	return nil
}

func newGraphWithControl(t *testing.T, bus Bus, checkpoints CheckpointStore, confirmer ProposalConfirmer) (*ManagerGraph, *streams.Client) {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	sc := streams.New(rdb)
	g, err := NewManagerGraph(GraphConfig{
		Bus:            bus,
		ControlStreams: sc,
		Checkpoints:    checkpoints,
		Confirmer:      confirmer,
	})
	require.NoError(t, err)
	return g, sc
}

func TestUserActionSendWritesOneMailControlMessage(t *testing.T) {
	bus := &capturingBus{}
	checkpoints := newMemCheckpointStore()
	g, sc := newGraphWithControl(t, bus, checkpoints, nil)
	ctx := context.Background()

	evt := NormalizedEvent{
		WBID:     "1000-0",
		UserID:   "u1",
		ThreadID: "t1",
		Event: Event{
			Source: "manager",
			Kind:   "user_action",
			Payload: map[string]any{
				"action_id":  "a-send",
				"choice":     "send",
				"message_id": "m1",
				"draft":      "Yes, 3pm works.",
			},
		},
	}

	require.NoError(t, g.Run(ctx, evt))

	key := whiteboard.ControlKey("u1", whiteboard.ControlMail)
	msgs, err := sc.ReadRange(ctx, key, "", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, "email.send.confirmed", msgs[0].Values["type"])
	require.Equal(t, "m1", msgs[0].Values["message_id"])
	require.NotEmpty(t, msgs[0].Values["draft_hash"])

	// A re-appended action (same action_id, fresh wb_id) adds nothing.
	evt.WBID = "1001-0"
	require.NoError(t, g.Run(ctx, evt))
	msgs, err = sc.ReadRange(ctx, key, "", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1, "a replayed user action must not re-confirm the send")
}

func TestUserActionApplyRunsConfirmerOnce(t *testing.T) {
	bus := &capturingBus{}
	checkpoints := newMemCheckpointStore()
	confirmer := &fakeConfirmer{}
	g, _ := newGraphWithControl(t, bus, checkpoints, confirmer)
	ctx := context.Background()

	evt := NormalizedEvent{
		WBID:     "1000-0",
		UserID:   "u1",
		ThreadID: "t1",
		Event: Event{
			Source: "manager",
			Kind:   "user_action",
			Payload: map[string]any{
				"action_id":   "a-apply",
				"choice":      "apply",
				"proposal_id": "p1",
			},
		},
	}

	require.NoError(t, g.Run(ctx, evt))
	require.Equal(t, []string{"p1"}, confirmer.confirms)

	evt.WBID = "1001-0"
	require.NoError(t, g.Run(ctx, evt))
	require.Equal(t, []string{"p1"}, confirmer.confirms, "a replayed apply must not re-run the confirm")

	cp, err := checkpoints.Get(ctx, "u1", "t1")
	require.NoError(t, err)
	require.Empty(t, cp.PendingPromptID)
}
