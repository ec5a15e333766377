package schedule

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterFiresOnClockAdvance(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := New(clock)
	done := make(chan struct{})

	require.True(t, s.After("conv-1", 2*time.Second, func() { close(done) }))
	assert.Equal(t, 1, s.Pending("conv-1"))

	clock.Advance(1 * time.Second)
	select {
	case <-done:
		t.Fatal("fired before its delay")
	case <-time.After(20 * time.Millisecond):
	}

	clock.Advance(1 * time.Second)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not fire")
	}
	assert.Eventually(t, func() bool { return s.Pending("conv-1") == 0 }, time.Second, 5*time.Millisecond)
}

func TestCancelDropsOwnerTasksOnly(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := New(clock)
	ran := make(chan string, 4)

	s.After("a", time.Second, func() { ran <- "a" })
	s.After("a", 2*time.Second, func() { ran <- "a" })
	s.After("b", time.Second, func() { ran <- "b" })

	assert.Equal(t, 2, s.Cancel("a"))
	assert.Equal(t, 0, s.Pending("a"))

	clock.Advance(3 * time.Second)
	select {
	case who := <-ran:
		assert.Equal(t, "b", who)
	case <-time.After(time.Second):
		t.Fatal("owner b task did not fire")
	}
	select {
	case who := <-ran:
		t.Fatalf("unexpected task from %s", who)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestClosedSchedulerRejectsTasks(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := New(clock)
	ran := make(chan struct{}, 1)
	s.After("x", time.Second, func() { ran <- struct{}{} })

	s.Close()
	assert.False(t, s.After("x", time.Second, func() {}))

	clock.Advance(time.Minute)
	select {
	case <-ran:
		t.Fatal("task ran after Close")
	case <-time.After(20 * time.Millisecond):
	}
}
