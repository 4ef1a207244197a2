package calendarplanner_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/thegaltinator/alfred-fabric/pkg/calendarplanner"
	"github.com/thegaltinator/alfred-fabric/pkg/planner"
	"github.com/thegaltinator/alfred-fabric/pkg/streams"
	testdb "github.com/thegaltinator/alfred-fabric/test/database"
	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

func newTestBusAndStreams(t *testing.T) (*whiteboard.Bus, *streams.Client) {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	sc := streams.New(rdb)
	return whiteboard.New(sc, 0), sc
}

func TestSubagentAppliesShadowAndEmitsProposal(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	bus, sc := newTestBusAndStreams(t)

	plannerSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(planner.RunResponse{PlanID: "plan-1", Version: "v1", Rationale: "fits the window"})
	}))
	t.Cleanup(plannerSrv.Close)

	cfg := calendarplanner.Config{
		UserID:       "u1",
		CalendarID:   "primary",
		ConsumerName: "worker-1",
		Streams:      sc,
		Bus:          bus,
		Shadow:       calendarplanner.NewShadowStore(dbClient.Client),
		Sync:         calendarplanner.NewSyncStore(dbClient.Client),
		Proposals:    calendarplanner.NewProposalStore(dbClient.Client),
		Planner:      planner.New(plannerSrv.URL),
	}
	sub := calendarplanner.New(cfg)

	ctx := context.Background()
	key := whiteboard.InputKey("u1", whiteboard.InputCalendar)
	_, err := sc.Append(ctx, key, map[string]any{
		"delta_id":   "d1",
		"event_id":   "ev1",
		"summary":    "Team sync",
		"start_time": time.Now().Format(time.RFC3339),
		"end_time":   time.Now().Add(time.Hour).Format(time.RFC3339),
		"thread_id":  "t1",
	}, 0)
	require.NoError(t, err)

	runCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	err = sub.Run(runCtx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	proposalCount, err := dbClient.Client.Proposal.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, proposalCount)

	wbEvents, err := bus.ReadRange(ctx, "u1", "", 10)
	require.NoError(t, err)
	require.Len(t, wbEvents, 1)
	require.Equal(t, "calendar.plan.proposed", wbEvents[0].Values["type"])
	require.Equal(t, "d1", wbEvents[0].Values["delta_id"])
}

func TestSubagentSkipsAlreadyProposedDelta(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	bus, sc := newTestBusAndStreams(t)

	calls := 0
	plannerSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(planner.RunResponse{PlanID: "plan-1", Version: "v1"})
	}))
	t.Cleanup(plannerSrv.Close)

	cfg := calendarplanner.Config{
		UserID:       "u1",
		CalendarID:   "primary",
		ConsumerName: "worker-1",
		Streams:      sc,
		Bus:          bus,
		Shadow:       calendarplanner.NewShadowStore(dbClient.Client),
		Sync:         calendarplanner.NewSyncStore(dbClient.Client),
		Proposals:    calendarplanner.NewProposalStore(dbClient.Client),
		Planner:      planner.New(plannerSrv.URL),
	}
	sub := calendarplanner.New(cfg)

	ctx := context.Background()
	key := whiteboard.InputKey("u1", whiteboard.InputCalendar)
	values := map[string]any{
		"delta_id":   "d-repeat",
		"event_id":   "ev2",
		"summary":    "Standup",
		"start_time": time.Now().Format(time.RFC3339),
		"end_time":   time.Now().Add(30 * time.Minute).Format(time.RFC3339),
		"thread_id":  "t1",
	}
	_, err := sc.Append(ctx, key, values, 0)
	require.NoError(t, err)

	runCtx1, cancel1 := context.WithTimeout(ctx, 1500*time.Millisecond)
	defer cancel1()
	_ = sub.Run(runCtx1)

	_, err = sc.Append(ctx, key, values, 0)
	require.NoError(t, err)

	runCtx2, cancel2 := context.WithTimeout(ctx, 1500*time.Millisecond)
	defer cancel2()
	_ = sub.Run(runCtx2)

	require.Equal(t, 1, calls, "a retried delta_id must not re-invoke the planner")

	proposalCount, err := dbClient.Client.Proposal.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, proposalCount)
}

type fakeCollaborator struct {
	event calendarplanner.ExternalEvent
}

func (f *fakeCollaborator) Pull(ctx context.Context, userID, calendarID, syncToken string) (calendarplanner.PullResult, error) {
	return calendarplanner.PullResult{NextSyncToken: "tok"}, nil
}

func (f *fakeCollaborator) FetchEvent(ctx context.Context, userID, calendarID, eventID string) (calendarplanner.ExternalEvent, error) {
	return f.event, nil
}

func TestConfirmRefusesDriftedProposal(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	bus, sc := newTestBusAndStreams(t)
	ctx := context.Background()

	shadow := calendarplanner.NewShadowStore(dbClient.Client)
	proposals := calendarplanner.NewProposalStore(dbClient.Client)

	tenAM := time.Date(2026, 7, 15, 10, 0, 0, 0, time.UTC)
	require.NoError(t, shadow.ApplyDelta(ctx, "u1", "primary", calendarplanner.ExternalEvent{
		EventID: "evX", Summary: "Design review", StartTime: tenAM, EndTime: tenAM.Add(time.Hour),
	}))

	prop, err := proposals.Create(ctx, calendarplanner.Proposal{
		UserID: "u1", ThreadID: "t1", PrimaryEventID: "evX",
		PlanJSON: `{"plan_id":"p1"}`, DeltaID: "dX",
	})
	require.NoError(t, err)

	// The external event moved to 11:00 out-of-band.
	elevenAM := tenAM.Add(time.Hour)
	sub := calendarplanner.New(calendarplanner.Config{
		UserID:     "u1",
		CalendarID: "primary",
		Streams:    sc,
		Bus:        bus,
		Shadow:     shadow,
		Sync:       calendarplanner.NewSyncStore(dbClient.Client),
		Proposals:  proposals,
		Collaborator: &fakeCollaborator{event: calendarplanner.ExternalEvent{
			EventID: "evX", Summary: "Design review", StartTime: elevenAM, EndTime: elevenAM.Add(time.Hour),
		}},
	})

	require.NoError(t, sub.Confirm(ctx, prop.ID, "t1"))

	stale, err := proposals.FindByID(ctx, prop.ID)
	require.NoError(t, err)
	require.Equal(t, "stale", stale.Status)

	events, err := bus.ReadRange(ctx, "u1", "", 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "calendar.plan.proposed", events[0].Values["type"])
	require.Contains(t, events[0].Values["summary"], "stale")
}

func TestConfirmAppliesWhenShadowMatches(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	bus, sc := newTestBusAndStreams(t)
	ctx := context.Background()

	shadow := calendarplanner.NewShadowStore(dbClient.Client)
	proposals := calendarplanner.NewProposalStore(dbClient.Client)

	tenAM := time.Date(2026, 7, 15, 10, 0, 0, 0, time.UTC)
	ev := calendarplanner.ExternalEvent{
		EventID: "evY", Summary: "1:1", StartTime: tenAM, EndTime: tenAM.Add(30 * time.Minute),
	}
	require.NoError(t, shadow.ApplyDelta(ctx, "u1", "primary", ev))

	prop, err := proposals.Create(ctx, calendarplanner.Proposal{
		UserID: "u1", ThreadID: "t1", PrimaryEventID: "evY",
		PlanJSON: `{"plan_id":"p2"}`, DeltaID: "dY",
	})
	require.NoError(t, err)

	sub := calendarplanner.New(calendarplanner.Config{
		UserID:       "u1",
		CalendarID:   "primary",
		Streams:      sc,
		Bus:          bus,
		Shadow:       shadow,
		Sync:         calendarplanner.NewSyncStore(dbClient.Client),
		Proposals:    proposals,
		Collaborator: &fakeCollaborator{event: ev},
	})

	require.NoError(t, sub.Confirm(ctx, prop.ID, "t1"))

	applied, err := proposals.FindByID(ctx, prop.ID)
	require.NoError(t, err)
	require.Equal(t, "applied", applied.Status)

	events, err := bus.ReadRange(ctx, "u1", "", 10)
	require.NoError(t, err)
	require.Empty(t, events, "a clean confirm emits nothing new")
}
