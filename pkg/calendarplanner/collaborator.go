package calendarplanner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Delta is one incremental change reported by the external calendar
// collaborator during a sync pull.
type Delta struct {
	DeltaID string
	Event   ExternalEvent
	Deleted bool
}

// PullResult is the outcome of a sync pull: the deltas observed and the
// token to resume from next time.
type PullResult struct {
	Deltas        []Delta
	NextSyncToken string
	// Expired signals the external store rejected sync_token as too old
	// ("sync expired"); the caller must re-bootstrap.
	Expired bool
}

// Collaborator is the external calendar API contract. Pull performs
// an incremental sync; FetchEvent re-fetches a single event for the
// confirm-path drift check.
type Collaborator interface {
	Pull(ctx context.Context, userID, calendarID, syncToken string) (PullResult, error)
	FetchEvent(ctx context.Context, userID, calendarID, eventID string) (ExternalEvent, error)
}

// HTTPCollaborator calls an external calendar collaborator over HTTP,
// following the same plain net/http client shape as pkg/planner.
type HTTPCollaborator struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewHTTPCollaborator constructs a Collaborator against baseURL.
func NewHTTPCollaborator(baseURL string) *HTTPCollaborator {
	return &HTTPCollaborator{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		logger:     slog.Default().With("component", "calendar_collaborator"),
	}
}

type syncResponse struct {
	Deltas []struct {
		DeltaID   string `json:"delta_id"`
		Deleted   bool   `json:"deleted"`
		EventID   string `json:"event_id"`
		Summary   string `json:"summary"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
		RawJSON   string `json:"raw_json"`
	} `json:"deltas"`
	NextSyncToken string `json:"next_sync_token"`
	Expired       bool   `json:"expired"`
}

// Pull calls GET {baseURL}/calendar/sync with the current sync_token.
func (c *HTTPCollaborator) Pull(ctx context.Context, userID, calendarID, syncToken string) (PullResult, error) {
	q := url.Values{"user_id": {userID}, "calendar_id": {calendarID}}
	if syncToken != "" {
		q.Set("sync_token", syncToken)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/calendar/sync?"+q.Encode(), nil)
	if err != nil {
		return PullResult{}, fmt.Errorf("calendarplanner: build sync request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return PullResult{}, fmt.Errorf("calendarplanner: sync %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return PullResult{}, fmt.Errorf("calendarplanner: sync returned HTTP %d: %s", resp.StatusCode, string(b))
	}

	var parsed syncResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return PullResult{}, fmt.Errorf("calendarplanner: decode sync response: %w", err)
	}

	out := PullResult{NextSyncToken: parsed.NextSyncToken, Expired: parsed.Expired}
	for _, d := range parsed.Deltas {
		start, _ := time.Parse(time.RFC3339, d.StartTime)
		end, _ := time.Parse(time.RFC3339, d.EndTime)
		out.Deltas = append(out.Deltas, Delta{
			DeltaID: d.DeltaID,
			Deleted: d.Deleted,
			Event: ExternalEvent{
				EventID:   d.EventID,
				Summary:   d.Summary,
				StartTime: start,
				EndTime:   end,
				RawJSON:   d.RawJSON,
			},
		})
	}
	return out, nil
}

// FetchEvent calls GET {baseURL}/calendar/events/{eventID}.
func (c *HTTPCollaborator) FetchEvent(ctx context.Context, userID, calendarID, eventID string) (ExternalEvent, error) {
	q := url.Values{"user_id": {userID}, "calendar_id": {calendarID}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/calendar/events/"+url.PathEscape(eventID)+"?"+q.Encode(), nil)
	if err != nil {
		return ExternalEvent{}, fmt.Errorf("calendarplanner: build fetch request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ExternalEvent{}, fmt.Errorf("calendarplanner: fetch event %s: %w", eventID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return ExternalEvent{}, fmt.Errorf("calendarplanner: fetch event returned HTTP %d: %s", resp.StatusCode, string(b))
	}

	var parsed struct {
		EventID   string `json:"event_id"`
		Summary   string `json:"summary"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
		RawJSON   string `json:"raw_json"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return ExternalEvent{}, fmt.Errorf("calendarplanner: decode event response: %w", err)
	}
	start, _ := time.Parse(time.RFC3339, parsed.StartTime)
	end, _ := time.Parse(time.RFC3339, parsed.EndTime)
	return ExternalEvent{
		EventID:   parsed.EventID,
		Summary:   parsed.Summary,
		StartTime: start,
		EndTime:   end,
		RawJSON:   parsed.RawJSON,
	}, nil
}
