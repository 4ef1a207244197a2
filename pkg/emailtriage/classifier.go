package emailtriage

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

// Message is one inbound email as carried on the input stream.
type Message struct {
	MessageID    string
	Sender       string
	Subject      string
	Snippet      string
	InternalDate string
	ThreadID     string
	ListHeaders  string
}

// Classification is the external model's verdict on a message.
type Classification struct {
	ReplyNeeded bool   `json:"reply_needed"`
	Summary     string `json:"summary"`
	Draft       string `json:"draft"`
}

// Classifier is the external classification collaborator contract.
type Classifier interface {
	Classify(ctx context.Context, msg Message) (Classification, error)
}

// HTTPClassifier calls the external classifier over HTTP, following the
// same plain net/http collaborator-client shape as pkg/planner.
type HTTPClassifier struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewHTTPClassifier constructs a Classifier against baseURL.
func NewHTTPClassifier(baseURL string) *HTTPClassifier {
	return &HTTPClassifier{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		logger:     slog.Default().With("component", "email_classifier"),
	}
}

// Classify calls POST {baseURL}/email/classify and decodes the verdict.
func (c *HTTPClassifier) Classify(ctx context.Context, msg Message) (Classification, error) {
	body, err := json.Marshal(map[string]string{
		"message_id": msg.MessageID,
		"sender":     msg.Sender,
		"subject":    msg.Subject,
		"snippet":    msg.Snippet,
	})
	if err != nil {
		return Classification{}, fmt.Errorf("emailtriage: encode classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/email/classify", bytes.NewReader(body))
	if err != nil {
		return Classification{}, fmt.Errorf("emailtriage: build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Classification{}, fmt.Errorf("emailtriage: classify %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return Classification{}, fmt.Errorf("emailtriage: classify returned HTTP %d: %s", resp.StatusCode, string(b))
	}

	var out Classification
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Classification{}, fmt.Errorf("emailtriage: decode classify response: %w", err)
	}
	return out, nil
}
