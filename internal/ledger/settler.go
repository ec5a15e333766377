package ledger

import (
	"encoding/hex"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/pelusa-v/hushr/internal/logger"
	"github.com/pelusa-v/hushr/internal/schedule"
)

// DefaultSettleDelay is the simulated network round trip of a transfer.
const DefaultSettleDelay = 3 * time.Second

// Settler stands in for the chain: a submitted transfer is recorded as
// pending and completed with a random hash once the delay has passed.
type Settler struct {
	ledger *Ledger
	sched  *schedule.Scheduler
	delay  time.Duration

	mu          sync.Mutex
	rng         *rand.Rand
	outstanding map[string]bool // tx id -> settlement scheduled
}

func NewSettler(l *Ledger, sched *schedule.Scheduler, delay time.Duration, rng *rand.Rand) *Settler {
	if delay <= 0 {
		delay = DefaultSettleDelay
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Settler{ledger: l, sched: sched, delay: delay, rng: rng, outstanding: map[string]bool{}}
}

func (s *Settler) Ledger() *Ledger { return s.ledger }

func owner(id string) string { return "tx/" + id }

// Submit records the transfer and schedules its settlement.
func (s *Settler) Submit(from, to, amount, token, network string) (string, error) {
	id, err := s.ledger.Add(from, to, amount, token, network)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.outstanding[id] = true
	s.mu.Unlock()

	if !s.sched.After(owner(id), s.delay, func() { s.settle(id) }) {
		s.forget(id)
		_ = s.ledger.Fail(id)
	}
	return id, nil
}

func (s *Settler) settle(id string) {
	s.forget(id)
	err := s.ledger.Complete(id, s.RandomHash())
	switch {
	case err == nil:
		logger.Log.Debug("transfer settled", "tx", id)
	case errors.Is(err, ErrTerminal):
		// the watchdog got there first
	default:
		logger.Log.Warn("transfer settlement failed", "tx", id, "error", err)
	}
}

func (s *Settler) forget(id string) {
	s.mu.Lock()
	delete(s.outstanding, id)
	s.mu.Unlock()
}

// Cancel drops a pending settlement and marks the transfer failed.
func (s *Settler) Cancel(id string) bool {
	if s.sched.Cancel(owner(id)) == 0 {
		return false
	}
	s.forget(id)
	return s.ledger.Fail(id) == nil
}

// Close cancels every outstanding settlement. The records stay pending, the
// session owning them is going away.
func (s *Settler) Close() {
	s.mu.Lock()
	ids := make([]string, 0, len(s.outstanding))
	for id := range s.outstanding {
		ids = append(ids, id)
	}
	s.outstanding = map[string]bool{}
	s.mu.Unlock()

	for _, id := range ids {
		s.sched.Cancel(owner(id))
	}
}

// Outstanding is the number of transfers waiting for settlement.
func (s *Settler) Outstanding() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.outstanding)
}

// RandomHash returns a 0x-prefixed 32-byte hex string.
func (s *Settler) RandomHash() string {
	b := make([]byte, 32)
	s.mu.Lock()
	for i := 0; i < len(b); i += 8 {
		v := s.rng.Uint64()
		for j := 0; j < 8; j++ {
			b[i+j] = byte(v >> (8 * j))
		}
	}
	s.mu.Unlock()
	return "0x" + hex.EncodeToString(b)
}
