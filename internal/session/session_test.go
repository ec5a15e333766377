package session

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pelusa-v/hushr/internal/events"
	"github.com/pelusa-v/hushr/internal/identity"
	"github.com/pelusa-v/hushr/internal/ledger"
)

const wallet = "0x742d35cc6cf5cf4c4e2ec4b4c9c7e8d3e9a2f1c0"

func newTestRegistry(t *testing.T) (*Registry, *clockwork.FakeClock, events.Chan) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	ch := make(events.Chan, 64)
	r := NewRegistry(WithClock(clock), WithPublisher(ch), WithSeed(9))
	t.Cleanup(r.Close)
	return r, clock, ch
}

func TestConnectIsIdempotent(t *testing.T) {
	r, _, _ := newTestRegistry(t)

	s, created := r.Connect(wallet)
	require.True(t, created)
	assert.Equal(t, identity.Normalize(wallet), s.Key())
	assert.Equal(t, "user-"+s.Key(), s.Profile.ID)

	again, created := r.Connect("  " + wallet + " ")
	assert.False(t, created)
	assert.Same(t, s, again)
	assert.Equal(t, 1, r.Len())

	got, ok := r.Get(wallet)
	require.True(t, ok)
	assert.Same(t, s, got)
}

func TestConnectWithoutAddressUsesFallback(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	s, _ := r.Connect("")
	assert.Equal(t, identity.FallbackAddress, s.Key())
	assert.Equal(t, []string{identity.FallbackAddress}, r.Addresses())
}

func TestSessionStoresAreSeeded(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	s, _ := r.Connect(wallet)

	assert.NotEmpty(t, s.Chat.Conversations())
	assert.NotEmpty(t, s.Feed.Posts())
	assert.Len(t, s.Ledger().All(), 7)
	assert.NotEmpty(t, s.Workspace.Recent())
	assert.Equal(t, s.Profile.ID, s.Chat.Viewer().ID)
}

func TestSessionsAreIsolated(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	a, _ := r.Connect(wallet)
	b, _ := r.Connect("0x0000000000000000000000000000000000000001")

	_, ok := a.Feed.CreatePost("gm", a.Profile.WalletAddress, "")
	require.True(t, ok)
	assert.Equal(t, len(b.Feed.Posts())+1, len(a.Feed.Posts()))
	assert.Len(t, r.Ledgers(), 2)
}

func TestDisconnectCancelsTimers(t *testing.T) {
	r, clock, ch := newTestRegistry(t)
	s, _ := r.Connect(wallet)

	id, err := s.Transfers.Submit(s.Key(), "0xabc", "1.5", "ETH", "Ethereum")
	require.NoError(t, err)
	require.Equal(t, events.TransactionAdded, (<-ch).Kind)

	require.True(t, r.Disconnect(wallet))
	e := <-ch
	assert.Equal(t, events.System, e.Kind)
	assert.Equal(t, s.Key(), e.Viewer)
	assert.Equal(t, events.Status{Status: events.StatusDisconnected}, e.Payload)
	assert.False(t, r.Disconnect(wallet))
	_, ok := r.Get(wallet)
	assert.False(t, ok)

	clock.Advance(ledger.DefaultSettleDelay * 2)
	select {
	case e := <-ch:
		t.Fatalf("unexpected event after disconnect: %s", e.Kind)
	case <-time.After(50 * time.Millisecond):
	}
	tx, _ := s.Ledger().Get(id)
	assert.Equal(t, ledger.Pending, tx.Status)

	_, sent := s.Chat.SendMessage("chat-1", "hello", "")
	assert.False(t, sent)
}

func TestEventsCarryViewerKey(t *testing.T) {
	r, _, ch := newTestRegistry(t)
	s, _ := r.Connect(wallet)

	_, ok := s.Chat.SendMessage("chat-1", "hello", "")
	require.True(t, ok)
	e := <-ch
	assert.Equal(t, events.MessageAppended, e.Kind)
	assert.Equal(t, s.Key(), e.Viewer)
}
