// Package planner is a thin HTTP client for the external Planner
// collaborator, called by the Manager graph's planner_call node.
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// RunRequest is the body of POST /planner/run.
type RunRequest struct {
	UserID       string `json:"user_id"`
	ThreadID     string `json:"thread_id"`
	PlanDate     string `json:"plan_date"`
	TimeBlock    string `json:"time_block"`
	ActivityType string `json:"activity_type,omitempty"`
}

// RunResponse is the Planner's reply. It has no side-effects and is
// idempotent, safe to call repeatedly.
type RunResponse struct {
	PlanID    string           `json:"plan_id"`
	Version   string           `json:"version"`
	Timeline  []map[string]any `json:"timeline"`
	Conflicts []map[string]any `json:"conflicts"`
	Rationale string           `json:"rationale"`
}

// Client calls the Planner collaborator over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// New constructs a Planner client against baseURL (e.g. http://planner:8090).
func New(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		logger:     slog.Default().With("component", "planner_client"),
	}
}

// Run calls POST {baseURL}/planner/run and decodes the response.
func (c *Client) Run(ctx context.Context, req RunRequest) (RunResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return RunResponse{}, fmt.Errorf("planner: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/planner/run", bytes.NewReader(body))
	if err != nil {
		return RunResponse{}, fmt.Errorf("planner: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return RunResponse{}, fmt.Errorf("planner: call %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return RunResponse{}, fmt.Errorf("planner: %s returned HTTP %d: %s", c.baseURL, resp.StatusCode, string(b))
	}

	var out RunResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return RunResponse{}, fmt.Errorf("planner: decode response: %w", err)
	}
	return out, nil
}
