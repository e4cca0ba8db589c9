package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLocker(t *testing.T) {
	var l Locker = NoopLocker{}

	unlock, ok, err := l.TryLock(context.Background(), "reconcile", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NotNil(t, unlock)
	assert.NoError(t, unlock(context.Background()))
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not-a-redis-url")
	assert.ErrorIs(t, err, ErrConnect)
}
