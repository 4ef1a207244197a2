package manager

import (
	"context"
	"fmt"
	"time"

	"github.com/thegaltinator/alfred-fabric/ent"
)

// Checkpoint is the durable per-(user,thread) Manager graph resume state.
type Checkpoint struct {
	UserID           string
	ThreadID         string
	LastWBID         string
	LastPlanID       string
	LastPlanVersion  string
	PendingPromptID  string
	SideEffects      []string
	CompactedCount   int
	CompactedLastID  string
}

// SideEffectKey builds the (user, thread, wb_id, node_name) idempotency
// tuple as a single comparable string.
func SideEffectKey(userID, threadID, wbID, node string) string {
	return userID + ":" + threadID + ":" + wbID + ":" + node
}

func checkpointID(userID, threadID string) string {
	return userID + ":" + threadID
}

// CheckpointStore is the checkpoint persistence contract.
type CheckpointStore interface {
	Get(ctx context.Context, userID, threadID string) (Checkpoint, error)
	Save(ctx context.Context, cp Checkpoint) error
	// RecordSideEffect inserts key into cp's side-effect log if absent,
	// returning whether it was newly inserted (false means it already
	// recorded: the caller must treat this as "already done").
	RecordSideEffect(ctx context.Context, cp *Checkpoint, key string) bool
}

// ShouldSkip reports true iff wbID is at or before the checkpoint's
// last processed ID under the stream-ID total order.
func ShouldSkip(wbID string, cp Checkpoint) bool {
	if cp.LastWBID == "" {
		return false
	}
	return compareStreamIDs(wbID, cp.LastWBID) <= 0
}

// HasSideEffect reports whether key is already recorded, checking both the
// live log and the compacted summary is not possible (compaction drops the
// key itself): compacted keys are, by construction, older than
// CompactedLastID, so callers should treat any wbID at or before it as
// already handled via ShouldSkip instead.
func HasSideEffect(cp Checkpoint, key string) bool {
	for _, k := range cp.SideEffects {
		if k == key {
			return true
		}
	}
	return false
}

const (
	// CompactionThreshold is the side-effect log size past which
	// older keys are folded into the compaction summary.
	CompactionThreshold = 500
	// CompactionRetain is how many of the most recent keys survive a
	// compaction pass uncompacted.
	CompactionRetain = 100
)

// Compact folds the oldest entries of a checkpoint's side-effect log into
// the compaction summary once it exceeds CompactionThreshold.
// last_wb_id_processed and last_plan_* are untouched.
func Compact(cp Checkpoint) Checkpoint {
	if len(cp.SideEffects) <= CompactionThreshold {
		return cp
	}
	cutoff := len(cp.SideEffects) - CompactionRetain
	folded := cp.SideEffects[:cutoff]
	cp.SideEffects = append([]string(nil), cp.SideEffects[cutoff:]...)
	cp.CompactedCount += len(folded)
	if len(folded) > 0 {
		cp.CompactedLastID = cp.LastWBID
	}
	return cp
}

// EntCheckpointStore persists checkpoints via Ent/Postgres. Checkpoints
// must survive restarts, so they get a transactional Postgres write rather
// than a cache entry.
type EntCheckpointStore struct {
	client *ent.Client
}

// NewEntCheckpointStore constructs a Checkpoint Store backed by the given Ent client.
func NewEntCheckpointStore(client *ent.Client) *EntCheckpointStore {
	return &EntCheckpointStore{client: client}
}

// Get returns the checkpoint for (userID, threadID), or a zero-value
// Checkpoint if none exists yet: a thread's first event always finds an
// empty checkpoint rather than an error.
func (s *EntCheckpointStore) Get(ctx context.Context, userID, threadID string) (Checkpoint, error) {
	row, err := s.client.Checkpoint.Get(ctx, checkpointID(userID, threadID))
	if ent.IsNotFound(err) {
		return Checkpoint{UserID: userID, ThreadID: threadID}, nil
	}
	if err != nil {
		return Checkpoint{}, fmt.Errorf("manager: get checkpoint %s/%s: %w", userID, threadID, err)
	}
	return Checkpoint{
		UserID:          row.UserID,
		ThreadID:        row.ThreadID,
		LastWBID:        row.LastWbIDProcessed,
		LastPlanID:      row.LastPlanID,
		LastPlanVersion: row.LastPlanVersion,
		PendingPromptID: row.PendingPromptID,
		SideEffects:     append([]string(nil), row.SideEffectsLog...),
		CompactedCount:  row.SideEffectsCompactedCount,
		CompactedLastID: row.SideEffectsCompactedLastID,
	}, nil
}

// Save upserts a checkpoint. Ent has no native upsert across the
// SQLite/Postgres drivers used here, so Save tries an update first and
// falls back to create.
func (s *EntCheckpointStore) Save(ctx context.Context, cp Checkpoint) error {
	id := checkpointID(cp.UserID, cp.ThreadID)

	err := s.client.Checkpoint.UpdateOneID(id).
		SetLastWbIDProcessed(cp.LastWBID).
		SetLastPlanID(cp.LastPlanID).
		SetLastPlanVersion(cp.LastPlanVersion).
		SetPendingPromptID(cp.PendingPromptID).
		SetSideEffectsLog(cp.SideEffects).
		SetSideEffectsCompactedCount(cp.CompactedCount).
		SetSideEffectsCompactedLastID(cp.CompactedLastID).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return s.create(ctx, id, cp)
	}
	if err != nil {
		return fmt.Errorf("manager: save checkpoint %s: %w", id, err)
	}
	return nil
}

func (s *EntCheckpointStore) create(ctx context.Context, id string, cp Checkpoint) error {
	err := s.client.Checkpoint.Create().
		SetID(id).
		SetUserID(cp.UserID).
		SetThreadID(cp.ThreadID).
		SetLastWbIDProcessed(cp.LastWBID).
		SetLastPlanID(cp.LastPlanID).
		SetLastPlanVersion(cp.LastPlanVersion).
		SetPendingPromptID(cp.PendingPromptID).
		SetSideEffectsLog(cp.SideEffects).
		SetSideEffectsCompactedCount(cp.CompactedCount).
		SetSideEffectsCompactedLastID(cp.CompactedLastID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("manager: create checkpoint %s: %w", id, err)
	}
	return nil
}

// RecordSideEffect records key in cp's in-memory log if absent and reports
// whether it was newly inserted. The caller is responsible for persisting
// cp via Save: this keeps the idempotency check and the eventual write
// inside the same node invocation: the side-effect is recorded before the
// graph routes onward.
func (s *EntCheckpointStore) RecordSideEffect(ctx context.Context, cp *Checkpoint, key string) bool {
	if HasSideEffect(*cp, key) {
		return false
	}
	cp.SideEffects = append(cp.SideEffects, key)
	return true
}
