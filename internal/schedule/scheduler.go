// Package schedule runs delayed callbacks that belong to an owner and can be
// cancelled together when the owner is torn down.
package schedule

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type task struct {
	owner string
	timer clockwork.Timer
}

type Scheduler struct {
	mu     sync.Mutex
	clock  clockwork.Clock
	tasks  map[uint64]*task
	owners map[string]map[uint64]bool // owner -> set(task id)
	next   uint64
	closed bool
}

func New(clock clockwork.Clock) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Scheduler{
		clock:  clock,
		tasks:  map[uint64]*task{},
		owners: map[string]map[uint64]bool{},
	}
}

func (s *Scheduler) Clock() clockwork.Clock { return s.clock }

func (s *Scheduler) Now() time.Time { return s.clock.Now() }

// After runs fn on its own goroutine once d has elapsed on the scheduler's
// clock. It returns false if the scheduler is closed. A task whose owner is
// cancelled before it fires never runs.
func (s *Scheduler) After(owner string, d time.Duration, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.next++
	id := s.next
	t := &task{owner: owner}
	s.tasks[id] = t
	if _, ok := s.owners[owner]; !ok {
		s.owners[owner] = map[uint64]bool{}
	}
	s.owners[owner][id] = true
	t.timer = s.clock.AfterFunc(d, func() {
		if !s.claim(id) {
			return
		}
		fn()
	})
	return true
}

// claim removes a fired task; false means it was cancelled in the meantime.
func (s *Scheduler) claim(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return false
	}
	s.forget(id, t.owner)
	return true
}

func (s *Scheduler) forget(id uint64, owner string) {
	delete(s.tasks, id)
	if set, ok := s.owners[owner]; ok {
		delete(set, id)
		if len(set) == 0 {
			delete(s.owners, owner)
		}
	}
}

// Cancel stops every pending task of owner and reports how many were dropped.
func (s *Scheduler) Cancel(owner string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id := range s.owners[owner] {
		if t, ok := s.tasks[id]; ok {
			t.timer.Stop()
			n++
		}
		delete(s.tasks, id)
	}
	delete(s.owners, owner)
	return n
}

// Pending is the number of tasks of owner that have not fired yet.
func (s *Scheduler) Pending(owner string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.owners[owner])
}

// Close cancels everything and refuses new tasks.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, t := range s.tasks {
		t.timer.Stop()
		delete(s.tasks, id)
	}
	s.owners = map[string]map[uint64]bool{}
}
