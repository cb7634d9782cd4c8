package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFake_AdvanceFiresInDeadlineOrder(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	fc := NewFake(start)
	var fired []string

	fc.AfterFunc(4*time.Second, func() { fired = append(fired, "b") })
	fc.AfterFunc(2*time.Second, func() { fired = append(fired, "a") })

	fc.Advance(1 * time.Second)
	assert.Empty(t, fired)

	fc.Advance(1 * time.Second)
	assert.Equal(t, []string{"a"}, fired)

	fc.Advance(2 * time.Second)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, start.Add(4*time.Second), fc.Now())
	assert.Zero(t, fc.Pending())
}

func TestFake_StopPreventsCallback(t *testing.T) {
	fc := NewFake(time.Now())
	called := false
	timer := fc.AfterFunc(time.Second, func() { called = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	fc.Advance(time.Minute)
	assert.False(t, called)
}

func TestFake_CallbackCanScheduleWithinWindow(t *testing.T) {
	fc := NewFake(time.Now())
	count := 0
	fc.AfterFunc(time.Second, func() {
		count++
		fc.AfterFunc(time.Second, func() { count++ })
	})

	fc.Advance(2 * time.Second)
	assert.Equal(t, 2, count)
}
