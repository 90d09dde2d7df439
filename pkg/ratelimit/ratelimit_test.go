package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestAllowWithinWindow(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := NewStore(3, time.Minute, WithClock(clock.Now))

	assert.True(t, store.Allow("ip1"))
	assert.True(t, store.Allow("ip1"))
	assert.True(t, store.Allow("ip1"))
	assert.False(t, store.Allow("ip1"))

	// 其他key不受影响
	assert.True(t, store.Allow("ip2"))
}

func TestAllowRefillsOverTime(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := NewStore(2, time.Minute, WithClock(clock.Now))

	assert.True(t, store.Allow("ip1"))
	assert.True(t, store.Allow("ip1"))
	assert.False(t, store.Allow("ip1"))

	clock.Advance(time.Minute)
	assert.True(t, store.Allow("ip1"))
}

func TestSweepRemovesIdleEntries(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := NewStore(5, time.Minute, WithClock(clock.Now), WithTTL(3*time.Minute))

	store.Allow("ip1")
	store.Allow("ip2")
	assert.Equal(t, 2, store.Len())

	clock.Advance(2 * time.Minute)
	store.Allow("ip2")

	clock.Advance(2 * time.Minute)
	removed := store.Sweep()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())

	clock.Advance(4 * time.Minute)
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 0, store.Len())
}

func TestSweepKeepsActiveEntries(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := NewStore(5, time.Minute, WithClock(clock.Now))

	store.Allow("ip1")
	assert.Equal(t, 0, store.Sweep())
	assert.Equal(t, 1, store.Len())
}
