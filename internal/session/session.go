// Package session keeps one in-memory state bundle per connected wallet.
package session

import (
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/pelusa-v/hushr/internal/chat"
	"github.com/pelusa-v/hushr/internal/events"
	"github.com/pelusa-v/hushr/internal/feed"
	"github.com/pelusa-v/hushr/internal/identity"
	"github.com/pelusa-v/hushr/internal/inscribe"
	"github.com/pelusa-v/hushr/internal/ledger"
	"github.com/pelusa-v/hushr/internal/logger"
	"github.com/pelusa-v/hushr/internal/schedule"
)

// Session is everything the service holds for one viewer. Its stores share a
// scheduler so Close tears down every pending timer at once.
type Session struct {
	Profile   identity.Profile
	Chat      *chat.Store
	Feed      *feed.Store
	Transfers *ledger.Settler
	Workspace *inscribe.Workspace

	CreatedAt time.Time
	sched     *schedule.Scheduler
}

// Key is the address the session is registered under.
func (s *Session) Key() string { return s.Profile.WalletAddress }

// Ledger is the viewer's transaction ledger.
func (s *Session) Ledger() *ledger.Ledger { return s.Transfers.Ledger() }

func (s *Session) Close() {
	s.Chat.Close()
	s.Transfers.Close()
	s.Workspace.Close()
	s.sched.Close()
}

type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session // wallet address -> session

	clock       clockwork.Clock
	pub         events.Publisher
	settleDelay time.Duration
	seed        uint64
	count       uint64
}

type Option func(*Registry)

func WithClock(c clockwork.Clock) Option { return func(r *Registry) { r.clock = c } }

func WithPublisher(p events.Publisher) Option { return func(r *Registry) { r.pub = p } }

func WithSettleDelay(d time.Duration) Option { return func(r *Registry) { r.settleDelay = d } }

// WithSeed fixes the random source of new sessions. 0 seeds from the clock.
func WithSeed(seed uint64) Option { return func(r *Registry) { r.seed = seed } }

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		sessions:    map[string]*Session{},
		pub:         events.Discard,
		settleDelay: ledger.DefaultSettleDelay,
	}
	for _, o := range opts {
		o(r)
	}
	if r.clock == nil {
		r.clock = clockwork.NewRealClock()
	}
	if r.seed == 0 {
		r.seed = uint64(time.Now().UnixNano())
	}
	return r
}

// Connect returns the session for address, creating it on first use. The
// second result reports whether it was created.
func (r *Registry) Connect(address string) (*Session, bool) {
	profile := identity.FromAddress(address)
	key := profile.WalletAddress

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[key]; ok {
		return s, false
	}
	r.count++
	s := r.build(profile, r.seed+r.count)
	r.sessions[key] = s
	logger.Log.Info("session connected", "address", key, "sessions", len(r.sessions))
	return s, true
}

// build wires the stores of one session. Each store gets its own stream of
// the session seed, a *rand.Rand is not safe for concurrent use.
func (r *Registry) build(profile identity.Profile, seed uint64) *Session {
	sched := schedule.New(r.clock)
	stream := func(n uint64) *rand.Rand { return rand.New(rand.NewPCG(seed, n)) }
	key := profile.WalletAddress

	l := ledger.New(ledger.SeedHistory(r.clock.Now()),
		ledger.WithClock(r.clock),
		ledger.WithPublisher(key, r.pub),
	)
	return &Session{
		Profile: profile,
		Chat: chat.NewStore(profile.ID, key,
			chat.WithScheduler(sched),
			chat.WithRand(stream(1)),
			chat.WithPublisher(r.pub),
		),
		Feed: feed.NewStore(feed.SeedPosts(),
			feed.WithClock(r.clock),
			feed.WithRand(stream(2)),
			feed.WithPublisher(key, r.pub),
		),
		Transfers: ledger.NewSettler(l, sched, r.settleDelay, stream(3)),
		Workspace: inscribe.New(key, sched, stream(4), r.pub),
		CreatedAt: r.clock.Now(),
		sched:     sched,
	}
}

// Get looks a session up by address. The address is normalised the same way
// Connect does it.
func (r *Registry) Get(address string) (*Session, bool) {
	key := identity.FromAddress(address).WalletAddress
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[key]
	return s, ok
}

// Disconnect closes and forgets the session of address.
func (r *Registry) Disconnect(address string) bool {
	key := identity.FromAddress(address).WalletAddress
	r.mu.Lock()
	s, ok := r.sessions[key]
	delete(r.sessions, key)
	r.mu.Unlock()
	if !ok {
		return false
	}
	s.Close()
	r.pub.Publish(events.Event{
		Kind:    events.System,
		Viewer:  key,
		At:      r.clock.Now(),
		Payload: events.Status{Status: events.StatusDisconnected},
	})
	logger.Log.Info("session disconnected", "address", key)
	return true
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Addresses lists the connected addresses, sorted.
func (r *Registry) Addresses() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.sessions))
	for k := range r.sessions {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Ledgers is the watchdog's view of every live ledger.
func (r *Registry) Ledgers() []*ledger.Ledger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*ledger.Ledger, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s.Ledger())
	}
	return out
}

// Close disconnects every session.
func (r *Registry) Close() {
	r.mu.Lock()
	all := r.sessions
	r.sessions = map[string]*Session{}
	r.mu.Unlock()
	for _, s := range all {
		s.Close()
	}
}
