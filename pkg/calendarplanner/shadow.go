package calendarplanner

import (
	"context"
	"fmt"
	"time"

	"github.com/thegaltinator/alfred-fabric/ent"
)

// ExternalEvent is one event as reported by the external calendar
// collaborator, used both to apply a delta and to re-fetch an event during
// a confirm-path drift check.
type ExternalEvent struct {
	EventID   string
	Summary   string
	StartTime time.Time
	EndTime   time.Time
	RawJSON   string
}

func shadowEventID(userID, calendarID, eventID string) string {
	return userID + ":" + calendarID + ":" + eventID
}

func syncStateID(userID, calendarID string) string {
	return userID + ":" + calendarID
}

// ShadowStore mirrors the external calendar locally so
// planning never writes through and drift can be detected before a confirm
// is applied.
type ShadowStore struct {
	client *ent.Client
}

// NewShadowStore constructs a ShadowStore backed by the given Ent client.
func NewShadowStore(client *ent.Client) *ShadowStore {
	return &ShadowStore{client: client}
}

// ApplyDelta upserts ev into the shadow calendar for (userID, calendarID).
func (s *ShadowStore) ApplyDelta(ctx context.Context, userID, calendarID string, ev ExternalEvent) error {
	id := shadowEventID(userID, calendarID, ev.EventID)

	err := s.client.ShadowCalendarEvent.UpdateOneID(id).
		SetSummary(ev.Summary).
		SetStartTime(ev.StartTime).
		SetEndTime(ev.EndTime).
		SetRawJSON(ev.RawJSON).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return s.client.ShadowCalendarEvent.Create().
			SetID(id).
			SetUserID(userID).
			SetCalendarID(calendarID).
			SetEventID(ev.EventID).
			SetSummary(ev.Summary).
			SetStartTime(ev.StartTime).
			SetEndTime(ev.EndTime).
			SetRawJSON(ev.RawJSON).
			Exec(ctx)
	}
	if err != nil {
		return fmt.Errorf("calendarplanner: apply delta for %s: %w", id, err)
	}
	return nil
}

// Remove drops an event from the shadow calendar after the external store
// reports it deleted. Removing an event that was never shadowed is a no-op.
func (s *ShadowStore) Remove(ctx context.Context, userID, calendarID, eventID string) error {
	err := s.client.ShadowCalendarEvent.DeleteOneID(shadowEventID(userID, calendarID, eventID)).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("calendarplanner: remove shadow event %s: %w", eventID, err)
	}
	return nil
}

// Get returns the shadow copy of one event, or ent.IsNotFound if absent.
func (s *ShadowStore) Get(ctx context.Context, userID, calendarID, eventID string) (ExternalEvent, error) {
	row, err := s.client.ShadowCalendarEvent.Get(ctx, shadowEventID(userID, calendarID, eventID))
	if err != nil {
		return ExternalEvent{}, err
	}
	return ExternalEvent{
		EventID:   row.EventID,
		Summary:   row.Summary,
		StartTime: row.StartTime,
		EndTime:   row.EndTime,
		RawJSON:   row.RawJSON,
	}, nil
}

// Drifted reports whether current differs materially (time bounds or
// summary) from the last-shadowed copy of the same event: the confirm-path
// drift check.
func Drifted(shadow, current ExternalEvent) bool {
	return !shadow.StartTime.Equal(current.StartTime) ||
		!shadow.EndTime.Equal(current.EndTime) ||
		shadow.Summary != current.Summary
}

// SyncState is the incremental-sync cursor for one (user, calendar) pair.
type SyncState struct {
	UserID      string
	CalendarID  string
	SyncToken   string
	LastDeltaID string
}

// SyncStore persists each user's per-calendar sync_token.
type SyncStore struct {
	client *ent.Client
}

// NewSyncStore constructs a SyncStore backed by the given Ent client.
func NewSyncStore(client *ent.Client) *SyncStore {
	return &SyncStore{client: client}
}

// Get returns the stored sync state, or a zero-value SyncState (empty
// token: the collaborator performs a full bootstrap) if none exists yet.
func (s *SyncStore) Get(ctx context.Context, userID, calendarID string) (SyncState, error) {
	row, err := s.client.CalendarSyncState.Get(ctx, syncStateID(userID, calendarID))
	if ent.IsNotFound(err) {
		return SyncState{UserID: userID, CalendarID: calendarID}, nil
	}
	if err != nil {
		return SyncState{}, fmt.Errorf("calendarplanner: get sync state %s/%s: %w", userID, calendarID, err)
	}
	return SyncState{
		UserID:      row.UserID,
		CalendarID:  row.CalendarID,
		SyncToken:   row.SyncToken,
		LastDeltaID: row.LastDeltaID,
	}, nil
}

// Save persists the sync token and last applied delta id.
func (s *SyncStore) Save(ctx context.Context, st SyncState) error {
	id := syncStateID(st.UserID, st.CalendarID)

	err := s.client.CalendarSyncState.UpdateOneID(id).
		SetSyncToken(st.SyncToken).
		SetLastDeltaID(st.LastDeltaID).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return s.client.CalendarSyncState.Create().
			SetID(id).
			SetUserID(st.UserID).
			SetCalendarID(st.CalendarID).
			SetSyncToken(st.SyncToken).
			SetLastDeltaID(st.LastDeltaID).
			Exec(ctx)
	}
	if err != nil {
		return fmt.Errorf("calendarplanner: save sync state %s: %w", id, err)
	}
	return nil
}
