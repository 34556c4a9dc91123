package draft

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultAutosaveInterval is how often a running Scheduler persists the draft.
const DefaultAutosaveInterval = 3 * time.Second

// TextSource provides the text to persist. *Session implements it.
type TextSource interface {
	Text() string
}

// writeGuard is implemented by sources that can veto a persist.
type writeGuard interface {
	Writable() error
}

// SchedulerOptions configure a Scheduler.
type SchedulerOptions struct {
	Interval time.Duration
	Clock    Clock
	Logger   *zap.Logger
}

// Scheduler periodically writes the draft text to storage.
type Scheduler struct {
	source   TextSource
	storage  Storage
	interval time.Duration
	clock    Clock
	log      *zap.Logger

	// runMu serializes Start and Stop.
	runMu  sync.Mutex
	ticker Ticker
	done   chan struct{}
	exited chan struct{}

	errMu    sync.Mutex
	lastErr  error
	persists int
}

// NewScheduler creates a stopped scheduler for source.
func NewScheduler(source TextSource, storage Storage, opts SchedulerOptions) *Scheduler {
	s := &Scheduler{
		source:   source,
		storage:  storage,
		interval: opts.Interval,
		clock:    opts.Clock,
		log:      opts.Logger,
	}
	if s.interval <= 0 {
		s.interval = DefaultAutosaveInterval
	}
	if s.clock == nil {
		s.clock = RealClock
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// Interval returns the fixed autosave period.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Start begins persisting every interval. Calling Start on a running
// scheduler restarts its timer.
func (s *Scheduler) Start() {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	s.stopLocked()

	t := s.clock.NewTicker(s.interval)
	done := make(chan struct{})
	exited := make(chan struct{})
	s.ticker, s.done, s.exited = t, done, exited

	go s.loop(t, done, exited)
	s.log.Debug("autosave started", zap.Duration("interval", s.interval))
}

// Show is called when the writing session becomes visible.
func (s *Scheduler) Show() {
	s.Start()
}

// Stop cancels the timer. No persist from the timer runs after Stop returns.
func (s *Scheduler) Stop() {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	s.stopLocked()
}

func (s *Scheduler) stopLocked() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.done)
	<-s.exited
	s.ticker, s.done, s.exited = nil, nil, nil
	s.log.Debug("autosave stopped")
}

// Hide is called when the writing session is hidden without a save or
// discard: the timer stops and the draft is flushed one last time.
func (s *Scheduler) Hide() {
	s.Stop()
	s.Persist()
}

// Running reports whether the timer is active.
func (s *Scheduler) Running() bool {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	return s.ticker != nil
}

func (s *Scheduler) loop(t Ticker, done <-chan struct{}, exited chan<- struct{}) {
	defer close(exited)
	for {
		select {
		case <-done:
			return
		case <-t.C():
			s.Persist()
		}
	}
}

// Persist writes the current draft text under DraftKey. Failures are logged
// and remembered; the in-memory draft is untouched so the next tick retries.
// Nothing is written while the source reports it is not writable.
func (s *Scheduler) Persist() {
	var err error
	if g, ok := s.source.(writeGuard); ok {
		err = g.Writable()
	}
	if err == nil {
		err = s.storage.Set(DraftKey, s.source.Text())
	}

	s.errMu.Lock()
	s.lastErr = err
	if err == nil {
		s.persists++
	}
	s.errMu.Unlock()

	if err != nil {
		s.log.Warn("autosave failed, will retry", zap.Error(err))
	}
}

// PersistErr returns the error from the most recent persist, if any.
func (s *Scheduler) PersistErr() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.lastErr
}

// Persists counts successful writes.
func (s *Scheduler) Persists() int {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.persists
}
