// Package ledger keeps a session's transfer records and their
// pending -> completed|failed lifecycle.
package ledger

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"

	"github.com/pelusa-v/hushr/internal/events"
)

type Ledger struct {
	mu sync.RWMutex

	txs  []*Transaction          // newest first
	byID map[string]*Transaction // id -> record

	viewer string
	clock  clockwork.Clock
	pub    events.Publisher
}

type Option func(*Ledger)

func WithClock(c clockwork.Clock) Option { return func(l *Ledger) { l.clock = c } }

func WithPublisher(viewer string, p events.Publisher) Option {
	return func(l *Ledger) { l.viewer, l.pub = viewer, p }
}

// New builds a ledger holding history (newest first).
func New(history []Transaction, opts ...Option) *Ledger {
	l := &Ledger{byID: map[string]*Transaction{}, pub: events.Discard}
	for _, o := range opts {
		o(l)
	}
	if l.clock == nil {
		l.clock = clockwork.NewRealClock()
	}
	for i := range history {
		tx := history[i]
		l.txs = append(l.txs, &tx)
		l.byID[tx.ID] = &tx
	}
	return l
}

// NormalizeAmount parses a user-entered amount ("1,250.45", " 0.5 ") and
// returns its canonical decimal string.
func NormalizeAmount(amount string) (string, error) {
	a := strings.ReplaceAll(strings.TrimSpace(amount), ",", "")
	d, err := decimal.NewFromString(a)
	if err != nil || !d.IsPositive() {
		return "", ErrInvalidAmount
	}
	return d.String(), nil
}

// Add records a new pending transfer at the head of the ledger and returns its id.
func (l *Ledger) Add(from, to, amount, token, network string) (string, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	token, network = strings.TrimSpace(token), strings.TrimSpace(network)
	if from == "" || to == "" || token == "" || network == "" {
		return "", ErrMissingField
	}
	amt, err := NormalizeAmount(amount)
	if err != nil {
		return "", err
	}
	tx := &Transaction{
		ID:        uuid.NewString(),
		From:      from,
		To:        to,
		Amount:    amt,
		Token:     token,
		Network:   network,
		Status:    Pending,
		CreatedAt: l.clock.Now(),
	}

	l.mu.Lock()
	l.txs = append([]*Transaction{tx}, l.txs...)
	l.byID[tx.ID] = tx
	cp := *tx
	l.mu.Unlock()

	l.publish(events.TransactionAdded, cp)
	return tx.ID, nil
}

// Complete settles a pending record with hash.
func (l *Ledger) Complete(id, hash string) error {
	if strings.TrimSpace(hash) == "" {
		return ErrEmptyHash
	}
	return l.settle(id, Completed, hash)
}

// Fail settles a pending record as failed; no hash is ever attached.
func (l *Ledger) Fail(id string) error {
	return l.settle(id, Failed, "")
}

func (l *Ledger) settle(id string, status Status, hash string) error {
	l.mu.Lock()
	tx, ok := l.byID[id]
	if !ok {
		l.mu.Unlock()
		return ErrNotFound
	}
	if tx.Status.Terminal() {
		l.mu.Unlock()
		return ErrTerminal
	}
	tx.Status = status
	tx.Hash = hash
	cp := *tx
	l.mu.Unlock()

	l.publish(events.TransactionUpdated, cp)
	return nil
}

func (l *Ledger) Get(id string) (Transaction, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	tx, ok := l.byID[id]
	if !ok {
		return Transaction{}, false
	}
	return *tx, true
}

// All returns every record, newest first.
func (l *Ledger) All() []Transaction { return l.filter(func(Status) bool { return true }) }

// Pending returns the records still waiting for settlement.
func (l *Ledger) Pending() []Transaction {
	return l.filter(func(s Status) bool { return s == Pending })
}

// Completed returns every settled record, failed ones included.
func (l *Ledger) Completed() []Transaction { return l.filter(Status.Terminal) }

func (l *Ledger) filter(keep func(Status) bool) []Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Transaction, 0, len(l.txs))
	for _, tx := range l.txs {
		if keep(tx.Status) {
			out = append(out, *tx)
		}
	}
	return out
}

func (l *Ledger) publish(kind events.Kind, tx Transaction) {
	l.pub.Publish(events.Event{Kind: kind, Viewer: l.viewer, At: l.clock.Now(), Payload: tx})
}
