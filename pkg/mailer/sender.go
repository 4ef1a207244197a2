package mailer

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

// SendRequest identifies one confirmed draft to deliver. The draft hash is
// the approval fingerprint: the external mail service is asked to send the
// stored draft matching it, never freshly supplied text.
type SendRequest struct {
	UserID    string `json:"user_id"`
	MessageID string `json:"message_id"`
	DraftHash string `json:"draft_hash"`
}

// Sender is the external mail API contract.
type Sender interface {
	Send(ctx context.Context, req SendRequest) error
}

// HTTPSender delivers via an external mail gateway over HTTP, following the
// same plain net/http collaborator-client shape as pkg/planner.
type HTTPSender struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewHTTPSender constructs a Sender against baseURL.
func NewHTTPSender(baseURL string) *HTTPSender {
	return &HTTPSender{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		logger:     slog.Default().With("component", "mail_sender"),
	}
}

// Send calls POST {baseURL}/mail/send.
func (s *HTTPSender) Send(ctx context.Context, req SendRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("mailer: encode send request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/mail/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mailer: build send request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("mailer: send %s: %w", s.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailer: send returned HTTP %d: %s", resp.StatusCode, string(b))
	}
	return nil
}
