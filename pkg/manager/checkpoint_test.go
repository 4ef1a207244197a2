package manager

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShouldSkipOrdersNumericallyNotLexically(t *testing.T) {
	cp := Checkpoint{LastWBID: "1000-0"}
	require.True(t, ShouldSkip("999-0", cp), "999-0 is numerically before 1000-0 despite sorting after it lexically")
	require.True(t, ShouldSkip("1000-0", cp), "equal to last processed must also be skipped")
	require.False(t, ShouldSkip("1000-1", cp))
	require.False(t, ShouldSkip("1001-0", cp))
}

func TestShouldSkipFalseWhenNoCheckpointYet(t *testing.T) {
	require.False(t, ShouldSkip("1-0", Checkpoint{}))
}

func TestCompareStreamIDsSameTimestampComparesSequence(t *testing.T) {
	require.Equal(t, -1, compareStreamIDs("5-0", "5-1"))
	require.Equal(t, 1, compareStreamIDs("5-2", "5-1"))
	require.Equal(t, 0, compareStreamIDs("5-1", "5-1"))
}

func TestHasSideEffect(t *testing.T) {
	cp := Checkpoint{SideEffects: []string{"u:t:1-0:planner_call"}}
	require.True(t, HasSideEffect(cp, "u:t:1-0:planner_call"))
	require.False(t, HasSideEffect(cp, "u:t:2-0:planner_call"))
}

func TestCompactFoldsOldestKeysOnceOverThreshold(t *testing.T) {
	keys := make([]string, CompactionThreshold+10)
	for i := range keys {
		keys[i] = SideEffectKey("u1", "t1", "1-0", "planner_call")
	}
	cp := Checkpoint{SideEffects: keys, LastWBID: "999-0"}

	out := Compact(cp)
	require.Len(t, out.SideEffects, CompactionRetain)
	require.Equal(t, len(keys)-CompactionRetain, out.CompactedCount)
	require.Equal(t, "999-0", out.CompactedLastID)
}

func TestCompactIsNoopUnderThreshold(t *testing.T) {
	cp := Checkpoint{SideEffects: []string{"a", "b"}}
	out := Compact(cp)
	require.Equal(t, cp.SideEffects, out.SideEffects)
	require.Zero(t, out.CompactedCount)
}
