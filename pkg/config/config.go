// Package config loads the fabric's runtime configuration from the
// environment: which users to watch, collaborator endpoints, stream
// retention and the productivity/rate-cap tunables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process-wide configuration shared by the runtime, the
// subagents and the mailer. Each binary reads the subset it needs.
type Config struct {
	// Users is the set of user ids this process runs workers for.
	Users []string

	// Collaborator endpoints.
	PlannerURL    string
	CalendarURL   string
	ClassifierURL string
	MailURL       string
	// ProdControlURL is accepted for HTTP-style recompute delivery; when
	// empty the stream channel is used instead.
	ProdControlURL string

	// StartAfterID is the runtime's initial whiteboard tail position.
	// Empty means only events appended after startup.
	StartAfterID string

	// MaxLenApprox caps whiteboard retention (approximate trim on append).
	MaxLenApprox int64

	// Productivity mismatch tunables.
	MismatchThreshold time.Duration
	MismatchCooldown  time.Duration

	// External call caps.
	PlannerRatePerMin   int
	PlannerRatePerHour  int
	EmailTriagePerHour  int
	EmailSendCapPerHour int

	// HTTPPort serves the subscriber endpoints and the user-action ingress.
	HTTPPort string
}

// Load reads configuration from the environment, applying defaults and
// validating what cannot be defaulted.
func Load() (Config, error) {
	maxLen, err := strconv.ParseInt(getEnvOrDefault("WB_MAXLEN_APPROX", "1000"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("config: invalid WB_MAXLEN_APPROX: %w", err)
	}
	threshold, err := strconv.Atoi(getEnvOrDefault("MISMATCH_THRESHOLD_S", "120"))
	if err != nil {
		return Config{}, fmt.Errorf("config: invalid MISMATCH_THRESHOLD_S: %w", err)
	}
	cooldown, err := strconv.Atoi(getEnvOrDefault("MISMATCH_COOLDOWN_S", "60"))
	if err != nil {
		return Config{}, fmt.Errorf("config: invalid MISMATCH_COOLDOWN_S: %w", err)
	}
	plannerPerMin, err := strconv.Atoi(getEnvOrDefault("PLANNER_RATE_PER_MIN", "6"))
	if err != nil {
		return Config{}, fmt.Errorf("config: invalid PLANNER_RATE_PER_MIN: %w", err)
	}
	plannerPerHour, err := strconv.Atoi(getEnvOrDefault("PLANNER_RATE_PER_HOUR", "60"))
	if err != nil {
		return Config{}, fmt.Errorf("config: invalid PLANNER_RATE_PER_HOUR: %w", err)
	}
	triagePerHour, err := strconv.Atoi(getEnvOrDefault("EMAIL_TRIAGE_PER_HOUR", "30"))
	if err != nil {
		return Config{}, fmt.Errorf("config: invalid EMAIL_TRIAGE_PER_HOUR: %w", err)
	}
	sendPerHour, err := strconv.Atoi(getEnvOrDefault("EMAIL_SEND_CAP_PER_HOUR", "20"))
	if err != nil {
		return Config{}, fmt.Errorf("config: invalid EMAIL_SEND_CAP_PER_HOUR: %w", err)
	}

	cfg := Config{
		Users:               splitUsers(os.Getenv("USERS")),
		PlannerURL:          os.Getenv("PLANNER_URL"),
		CalendarURL:         os.Getenv("CALENDAR_URL"),
		ClassifierURL:       os.Getenv("CLASSIFIER_URL"),
		MailURL:             os.Getenv("MAIL_URL"),
		ProdControlURL:      os.Getenv("PROD_CONTROL_URL"),
		StartAfterID:        os.Getenv("START_AFTER_ID"),
		MaxLenApprox:        maxLen,
		MismatchThreshold:   time.Duration(threshold) * time.Second,
		MismatchCooldown:    time.Duration(cooldown) * time.Second,
		PlannerRatePerMin:   plannerPerMin,
		PlannerRatePerHour:  plannerPerHour,
		EmailTriagePerHour:  triagePerHour,
		EmailSendCapPerHour: sendPerHour,
		HTTPPort:            getEnvOrDefault("HTTP_PORT", "8080"),
	}
	return cfg, cfg.Validate()
}

// Validate rejects configurations no worker can run with.
func (c Config) Validate() error {
	if c.MaxLenApprox < 1 {
		return fmt.Errorf("config: WB_MAXLEN_APPROX must be at least 1")
	}
	if c.MismatchThreshold <= 0 {
		return fmt.Errorf("config: MISMATCH_THRESHOLD_S must be positive")
	}
	if c.MismatchCooldown < 0 {
		return fmt.Errorf("config: MISMATCH_COOLDOWN_S must not be negative")
	}
	for _, u := range c.Users {
		if strings.TrimSpace(u) == "" {
			return fmt.Errorf("config: USERS contains an empty user id")
		}
	}
	return nil
}

// splitUsers parses the comma-separated USERS value, trimming whitespace
// and dropping empty segments.
func splitUsers(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	users := make([]string, 0, len(parts))
	for _, p := range parts {
		if u := strings.TrimSpace(p); u != "" {
			users = append(users, u)
		}
	}
	return users
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
