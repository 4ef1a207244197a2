package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Users)
	assert.Empty(t, cfg.StartAfterID)
	assert.Equal(t, int64(1000), cfg.MaxLenApprox)
	assert.Equal(t, 120*time.Second, cfg.MismatchThreshold)
	assert.Equal(t, 60*time.Second, cfg.MismatchCooldown)
	assert.Equal(t, 6, cfg.PlannerRatePerMin)
	assert.Equal(t, 60, cfg.PlannerRatePerHour)
	assert.Equal(t, 20, cfg.EmailSendCapPerHour)
	assert.Equal(t, "8080", cfg.HTTPPort)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("USERS", "alice, bob ,carol")
	t.Setenv("PLANNER_URL", "http://planner:8090")
	t.Setenv("START_AFTER_ID", "1700000000000-0")
	t.Setenv("WB_MAXLEN_APPROX", "500")
	t.Setenv("MISMATCH_THRESHOLD_S", "90")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"alice", "bob", "carol"}, cfg.Users)
	assert.Equal(t, "http://planner:8090", cfg.PlannerURL)
	assert.Equal(t, "1700000000000-0", cfg.StartAfterID)
	assert.Equal(t, int64(500), cfg.MaxLenApprox)
	assert.Equal(t, 90*time.Second, cfg.MismatchThreshold)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("WB_MAXLEN_APPROX", "not-a-number")
	_, err := Load()
	require.Error(t, err)
}

func TestValidateRejectsZeroThreshold(t *testing.T) {
	cfg := Config{MaxLenApprox: 100}
	require.Error(t, cfg.Validate())
}
