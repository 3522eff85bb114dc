// Package scheduler runs the two kinds of deferred work the bank needs: a
// repeating job (the logout countdown) and a one-shot delayed job (loan
// credit). Every job is returned as a Handle that cancels it explicitly, so
// replacing a timer never leaves a stale one running.
package scheduler

import "time"

// Handle cancels a scheduled job. Cancel is idempotent. A job already
// dispatched when Cancel is called may still run; callers that care guard
// against that themselves.
type Handle interface {
	Cancel()
}

// Scheduler schedules jobs.
type Scheduler interface {
	// Every runs fn each interval until the handle is cancelled.
	Every(interval time.Duration, fn func()) Handle
	// After runs fn once, delay from now, unless cancelled first.
	After(delay time.Duration, fn func()) Handle
}
