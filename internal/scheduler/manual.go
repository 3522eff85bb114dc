package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Scheduler driven by an explicit clock. Nothing runs until
// Advance is called; jobs then fire synchronously on the caller's
// goroutine in due order. It backs deterministic tests and scripted
// sessions.
type Manual struct {
	mu   sync.Mutex
	now  time.Time
	seq  int
	jobs map[int]*manualJob
}

type manualJob struct {
	id    int
	next  time.Time
	every time.Duration
	fn    func()
}

// NewManual returns a scheduler whose clock reads start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start, jobs: make(map[int]*manualJob)}
}

// Now returns the scheduler clock.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of scheduled jobs.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.jobs)
}

func (m *Manual) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		interval = time.Second
	}
	return m.add(interval, interval, fn)
}

func (m *Manual) After(delay time.Duration, fn func()) Handle {
	return m.add(delay, 0, fn)
}

func (m *Manual) add(delay, every time.Duration, fn func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	j := &manualJob{id: m.seq, next: m.now.Add(delay), every: every, fn: fn}
	m.jobs[j.id] = j
	return &manualHandle{m: m, id: j.id}
}

// Advance moves the clock forward by d, running every job that falls due
// on the way. Jobs may schedule or cancel jobs while running.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		j := m.nextDue(target)
		if j == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = j.next
		if j.every > 0 {
			j.next = j.next.Add(j.every)
		} else {
			delete(m.jobs, j.id)
		}
		fn := j.fn
		m.mu.Unlock()

		fn()
	}
}

func (m *Manual) nextDue(target time.Time) *manualJob {
	due := make([]*manualJob, 0, len(m.jobs))
	for _, j := range m.jobs {
		if !j.next.After(target) {
			due = append(due, j)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(a, b int) bool {
		if due[a].next.Equal(due[b].next) {
			return due[a].id < due[b].id
		}
		return due[a].next.Before(due[b].next)
	})
	return due[0]
}

type manualHandle struct {
	m  *Manual
	id int
}

func (h *manualHandle) Cancel() {
	h.m.mu.Lock()
	defer h.m.mu.Unlock()
	delete(h.m.jobs, h.id)
}
