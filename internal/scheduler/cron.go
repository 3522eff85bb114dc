package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Cron is the production Scheduler backed by robfig/cron. Every maps to a
// fixed interval schedule and After to a schedule that fires once; both are
// removed through their entry ID.
type Cron struct {
	c *cron.Cron
}

// NewCron returns a stopped scheduler.
func NewCron() *Cron {
	return &Cron{c: cron.New(cron.WithSeconds())}
}

// Start begins dispatching jobs in the background.
func (s *Cron) Start() { s.c.Start() }

// Stop halts dispatching and returns a context done once running jobs
// have completed.
func (s *Cron) Stop() context.Context { return s.c.Stop() }

// Every fires fn each interval, the first time one full interval after the
// call.
func (s *Cron) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		interval = time.Second
	}
	id := s.c.Schedule(intervalSchedule{interval: interval}, cron.FuncJob(fn))
	return &cronHandle{c: s.c, id: id}
}

func (s *Cron) After(delay time.Duration, fn func()) Handle {
	h := &cronHandle{c: s.c}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.id = s.c.Schedule(&onceSchedule{delay: delay}, cron.FuncJob(func() {
		fn()
		h.Cancel()
	}))
	return h
}

type cronHandle struct {
	c    *cron.Cron
	mu   sync.Mutex
	id   cron.EntryID
	done bool
}

func (h *cronHandle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done {
		return
	}
	h.done = true
	h.c.Remove(h.id)
}

// intervalSchedule activates exactly interval after the previous activation.
// cron.Every would align to whole seconds and could fire the first tick
// almost immediately.
type intervalSchedule struct {
	interval time.Duration
}

func (i intervalSchedule) Next(t time.Time) time.Time {
	return t.Add(i.interval)
}

// onceSchedule yields a single activation delay after the time it is first
// asked about, and the zero time afterwards, which cron never runs.
type onceSchedule struct {
	delay time.Duration
	fired bool
}

func (o *onceSchedule) Next(t time.Time) time.Time {
	if o.fired {
		return time.Time{}
	}
	o.fired = true
	return t.Add(o.delay)
}
