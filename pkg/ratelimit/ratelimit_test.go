package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllowRespectsPerMinuteBurst(t *testing.T) {
	c := New(2, 0)
	require.True(t, c.Allow())
	require.True(t, c.Allow())
	require.False(t, c.Allow(), "third call within the same instant should exceed the per-minute burst of 2")
}

func TestNewWithZeroDisablesCeiling(t *testing.T) {
	c := New(0, 0)
	for i := 0; i < 100; i++ {
		require.True(t, c.Allow())
	}
}
