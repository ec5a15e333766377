package ledger

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"

	"github.com/pelusa-v/hushr/internal/logger"
)

// Watchdog periodically fails transfers that stayed pending longer than the
// timeout, across every ledger returned by source.
type Watchdog struct {
	source  func() []*Ledger
	clock   clockwork.Clock
	timeout time.Duration
	sched   gocron.Scheduler
}

func NewWatchdog(source func() []*Ledger, clock clockwork.Clock, interval, timeout time.Duration) (*Watchdog, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	sched, err := gocron.NewScheduler(gocron.WithClock(clock))
	if err != nil {
		return nil, err
	}
	w := &Watchdog{source: source, clock: clock, timeout: timeout, sched: sched}
	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { w.Sweep() }),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, err
	}
	return w, nil
}

func (w *Watchdog) Start() { w.sched.Start() }

func (w *Watchdog) Stop() error { return w.sched.Shutdown() }

// Sweep fails every stale pending record and returns how many it failed.
func (w *Watchdog) Sweep() int {
	now := w.clock.Now()
	failed := 0
	for _, l := range w.source() {
		for _, tx := range l.Pending() {
			if now.Sub(tx.CreatedAt) < w.timeout {
				continue
			}
			if err := l.Fail(tx.ID); err == nil {
				failed++
			}
		}
	}
	if failed > 0 {
		logger.Log.Info("[Watchdog] failed stale transfers", "count", failed, "timeout", w.timeout)
	}
	return failed
}
