package bank

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/bankist/internal/format"
	"github.com/dmitrijs2005/bankist/internal/journal"
)

// startTimer replaces the countdown: the old handle is cancelled, the
// generation bumped so a tick already dispatched by the old handle is
// ignored, and the full value rendered right away.
func (c *Coordinator) startTimer() {
	c.stopTimer()
	sess, ok := c.session.Current()
	if !ok {
		return
	}
	gen := c.timerGen
	c.view.RenderTimer(format.Countdown(sess.Remaining))
	c.timer = c.sched.Every(c.tickInterval, func() { c.tick(gen) })
}

func (c *Coordinator) stopTimer() {
	c.timerGen++
	if c.timer != nil {
		c.timer.Cancel()
		c.timer = nil
	}
}

// resetTimer restores the full countdown after a mutating transaction.
func (c *Coordinator) resetTimer() {
	c.session.ResetTimer()
	c.startTimer()
}

func (c *Coordinator) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.timerGen {
		return
	}
	sess, ok := c.session.Current()
	if !ok {
		c.stopTimer()
		return
	}

	remaining, expired := c.session.Tick(c.accountExists)
	c.view.RenderTimer(format.Countdown(remaining))
	if !expired {
		return
	}

	ctx := context.Background()
	username := ""
	if acc, ok := c.dir.Get(sess.AccountID); ok {
		username = acc.Username
	}
	c.endSession()
	c.view.Notify("Session expired, please log in again")
	c.log.Info(ctx, "session expired", "username", username)
	c.record(ctx, journal.KindExpired, username, decimal.Zero, "")
}

func (c *Coordinator) accountExists(id uuid.UUID) bool {
	_, ok := c.dir.Get(id)
	return ok
}
