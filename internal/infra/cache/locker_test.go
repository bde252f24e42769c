//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker_Acquire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	l := NewMemoryLocker()
	l.now = func() time.Time { return now }

	ok, err := l.Acquire(ctx, "reminder:daily:1", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Acquire(ctx, "reminder:daily:1", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok, "held key must not be granted twice")

	now = now.Add(time.Hour)
	ok, err = l.Acquire(ctx, "reminder:daily:1", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok, "expired key is granted again")
}

func TestMemoryLocker_Release(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLocker()

	ok, _ := l.Acquire(ctx, "run:daily", time.Minute)
	require.True(t, ok)
	require.NoError(t, l.Release(ctx, "run:daily"))

	ok, _ = l.Acquire(ctx, "run:daily", time.Minute)
	assert.True(t, ok)
}
