package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

const from = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"

func newTestLedger() (*Ledger, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(epoch)
	return New(nil, WithClock(clock)), clock
}

func ids(txs []Transaction) []string {
	out := make([]string, 0, len(txs))
	for _, tx := range txs {
		out = append(out, tx.ID)
	}
	return out
}

func TestAddThenComplete(t *testing.T) {
	l, _ := newTestLedger()
	id, err := l.Add(from, "0xabc", "1.50", "USDC", "Polygon")
	require.NoError(t, err)

	assert.Contains(t, ids(l.Pending()), id)
	assert.NotContains(t, ids(l.Completed()), id)
	tx, ok := l.Get(id)
	require.True(t, ok)
	assert.Equal(t, Pending, tx.Status)
	assert.Equal(t, "1.5", tx.Amount)
	assert.Empty(t, tx.Hash)
	assert.Equal(t, epoch, tx.CreatedAt)

	require.NoError(t, l.Complete(id, "0xfeed"))
	assert.NotContains(t, ids(l.Pending()), id)
	done := l.Completed()
	require.Len(t, done, 1)
	assert.Equal(t, Completed, done[0].Status)
	assert.Equal(t, "0xfeed", done[0].Hash)
}

func TestFailNeverSetsHash(t *testing.T) {
	l, _ := newTestLedger()
	id, err := l.Add(from, "0xabc", "5", "BNB", "BSC")
	require.NoError(t, err)

	require.NoError(t, l.Fail(id))
	tx, _ := l.Get(id)
	assert.Equal(t, Failed, tx.Status)
	assert.Empty(t, tx.Hash)

	assert.ErrorIs(t, l.Complete(id, "0xlate"), ErrTerminal)
	tx, _ = l.Get(id)
	assert.Equal(t, Failed, tx.Status)
	assert.Empty(t, tx.Hash)
	assert.Contains(t, ids(l.Completed()), id)
}

func TestTerminalStatesAreImmutable(t *testing.T) {
	l, _ := newTestLedger()
	id, _ := l.Add(from, "0xabc", "5", "BNB", "BSC")
	require.NoError(t, l.Complete(id, "0x1"))

	assert.ErrorIs(t, l.Complete(id, "0x2"), ErrTerminal)
	assert.ErrorIs(t, l.Fail(id), ErrTerminal)
	tx, _ := l.Get(id)
	assert.Equal(t, "0x1", tx.Hash)

	assert.ErrorIs(t, l.Complete("missing", "0x3"), ErrNotFound)
	assert.ErrorIs(t, l.Complete(id, " "), ErrEmptyHash)
}

func TestAddValidatesInput(t *testing.T) {
	l, _ := newTestLedger()
	for _, amount := range []string{"", "abc", "0", "-1"} {
		_, err := l.Add(from, "0xabc", amount, "ETH", "Ethereum")
		assert.True(t, errors.Is(err, ErrInvalidAmount), amount)
	}
	_, err := l.Add(from, "", "1", "ETH", "Ethereum")
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Empty(t, l.All())
}

func TestNormalizeAmount(t *testing.T) {
	got, err := NormalizeAmount("1,250.45")
	require.NoError(t, err)
	assert.Equal(t, "1250.45", got)
	got, err = NormalizeAmount(" 0.0025 ")
	require.NoError(t, err)
	assert.Equal(t, "0.0025", got)
}

func TestNewestFirstAndHistory(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	l := New(SeedHistory(epoch), WithClock(clock))
	assert.Len(t, l.Completed(), 7)
	assert.Empty(t, l.Pending())

	a, _ := l.Add(from, "0x1", "1", "ETH", "Ethereum")
	clock.Advance(time.Second)
	b, _ := l.Add(from, "0x2", "2", "ETH", "Ethereum")

	all := l.All()
	require.Len(t, all, 9)
	assert.Equal(t, []string{b, a, "mock-1"}, ids(all[:3]))
	assert.Equal(t, []string{b, a}, ids(l.Pending()))

	failed, _ := l.Get("mock-7")
	assert.Equal(t, Failed, failed.Status)
	assert.Empty(t, failed.Hash)
}
