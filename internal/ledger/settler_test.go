package ledger

import (
	"math/rand/v2"
	"regexp"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pelusa-v/hushr/internal/events"
	"github.com/pelusa-v/hushr/internal/schedule"
)

var hashPattern = regexp.MustCompile(`^0x[0-9a-f]{64}$`)

func newTestSettler(t *testing.T) (*Settler, *clockwork.FakeClock, events.Chan) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(epoch)
	ch := make(events.Chan, 16)
	l := New(nil, WithClock(clock), WithPublisher(from, ch))
	s := NewSettler(l, schedule.New(clock), 0, rand.New(rand.NewPCG(3, 4)))
	t.Cleanup(s.Close)
	return s, clock, ch
}

func next(t *testing.T, ch events.Chan) events.Event {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("no event")
	}
	return events.Event{}
}

func TestSubmitSettlesAfterDelay(t *testing.T) {
	s, clock, ch := newTestSettler(t)
	id, err := s.Submit(from, "0xabc", "10", "HUSHR", "Ethereum")
	require.NoError(t, err)
	assert.Equal(t, events.TransactionAdded, next(t, ch).Kind)
	assert.Equal(t, 1, s.Outstanding())

	clock.Advance(DefaultSettleDelay - time.Millisecond)
	tx, _ := s.Ledger().Get(id)
	assert.Equal(t, Pending, tx.Status)

	clock.Advance(time.Millisecond)
	e := next(t, ch)
	assert.Equal(t, events.TransactionUpdated, e.Kind)
	tx = e.Payload.(Transaction)
	assert.Equal(t, id, tx.ID)
	assert.Equal(t, Completed, tx.Status)
	assert.Regexp(t, hashPattern, tx.Hash)
	assert.Equal(t, 0, s.Outstanding())
}

func TestCancelFailsTransfer(t *testing.T) {
	s, clock, _ := newTestSettler(t)
	id, err := s.Submit(from, "0xabc", "10", "HUSHR", "Ethereum")
	require.NoError(t, err)

	assert.True(t, s.Cancel(id))
	assert.False(t, s.Cancel(id))
	clock.Advance(time.Minute)

	tx, _ := s.Ledger().Get(id)
	assert.Equal(t, Failed, tx.Status)
	assert.Empty(t, tx.Hash)
}

func TestCloseLeavesTransfersPending(t *testing.T) {
	s, clock, ch := newTestSettler(t)
	id, _ := s.Submit(from, "0xabc", "10", "HUSHR", "Ethereum")
	next(t, ch)

	s.Close()
	clock.Advance(time.Minute)
	select {
	case e := <-ch:
		t.Fatalf("unexpected %s after close", e.Kind)
	case <-time.After(30 * time.Millisecond):
	}
	tx, _ := s.Ledger().Get(id)
	assert.Equal(t, Pending, tx.Status)
}

func TestRandomHashShape(t *testing.T) {
	s, _, _ := newTestSettler(t)
	a, b := s.RandomHash(), s.RandomHash()
	assert.Regexp(t, hashPattern, a)
	assert.NotEqual(t, a, b)
}
