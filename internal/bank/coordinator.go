// Package bank is the transaction coordinator. It authenticates logins,
// applies transfers, approves and later credits loans, closes accounts and
// drives the logout countdown, asking a Presenter to re-render after every
// change.
//
// Every intent, countdown tick and deferred loan credit takes the same
// mutex and runs to completion before the next one starts.
package bank

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/bankist/internal/accounts"
	"github.com/dmitrijs2005/bankist/internal/format"
	"github.com/dmitrijs2005/bankist/internal/journal"
	"github.com/dmitrijs2005/bankist/internal/logging"
	"github.com/dmitrijs2005/bankist/internal/scheduler"
	"github.com/dmitrijs2005/bankist/internal/session"
)

const (
	DefaultLoanDelay    = 2500 * time.Millisecond
	DefaultTickInterval = time.Second
)

type Coordinator struct {
	mu sync.Mutex

	dir     *accounts.Directory
	session *session.Machine
	sched   scheduler.Scheduler
	view    Presenter
	journal journal.Recorder
	log     logging.Logger
	now     func() time.Time

	loanDelay    time.Duration
	tickInterval time.Duration
	symbol       string

	sorted   bool
	timer    scheduler.Handle
	timerGen uint64
	loans    map[uuid.UUID]*pendingLoan
}

// pendingLoan is an approved loan waiting for its credit. It carries the
// requesting account so the credit can be checked against the session that
// is current when it fires.
type pendingLoan struct {
	id        uuid.UUID
	accountID uuid.UUID
	username  string
	amount    decimal.Decimal
	handle    scheduler.Handle
}

type Option func(*Coordinator)

// WithClock replaces time.Now for movement timestamps and relative dates.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

func WithLoanDelay(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.loanDelay = d
		}
	}
}

func WithTickInterval(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.tickInterval = d
		}
	}
}

// WithSessionTimeout sets the countdown start in seconds.
func WithSessionTimeout(seconds int) Option {
	return func(c *Coordinator) { c.session = session.NewMachine(seconds) }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Coordinator) { c.log = l }
}

func WithJournal(r journal.Recorder) Option {
	return func(c *Coordinator) { c.journal = r }
}

// WithCurrencySymbol sets the symbol used for accounts without currency
// and locale hints.
func WithCurrencySymbol(symbol string) Option {
	return func(c *Coordinator) { c.symbol = symbol }
}

// New wires a coordinator over dir. Deferred work goes through sched and
// every change is rendered on view.
func New(dir *accounts.Directory, sched scheduler.Scheduler, view Presenter, opts ...Option) *Coordinator {
	c := &Coordinator{
		dir:          dir,
		session:      session.NewMachine(session.DefaultTimeout),
		sched:        sched,
		view:         view,
		journal:      journal.Noop{},
		log:          logging.Nop{},
		now:          time.Now,
		loanDelay:    DefaultLoanDelay,
		tickInterval: DefaultTickInterval,
		symbol:       format.DefaultSymbol,
		loans:        make(map[uuid.UUID]*pendingLoan),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("module", "bank")
	return c
}

// Login authenticates username and pin. On success any previous session is
// replaced and its countdown cancelled. A failed attempt leaves the current
// session, if any, untouched.
func (c *Coordinator) Login(ctx context.Context, username string, pin int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	acc, ok := c.dir.FindByUsername(username)
	if !ok || !acc.CheckPin(pin) {
		c.log.Warn(ctx, "login failed", "username", username)
		c.record(ctx, journal.KindLoginFailed, username, decimal.Zero, "")
		return reject(OpLogin, ErrAuthenticationFailed)
	}

	c.stopTimer()
	sess := c.session.Login(acc.ID)
	c.log.Info(ctx, "login", "username", acc.Username, "session", sess.ID)

	c.view.RenderWelcome(acc.FirstName())
	c.view.RenderDate(format.Timestamp(c.now(), acc.Locale))
	c.view.ShowApp()
	c.refresh(acc)
	c.startTimer()

	c.record(ctx, journal.KindLogin, acc.Username, decimal.Zero, "")
	return nil
}

// Logout ends the active session.
func (c *Coordinator) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	acc, err := c.currentAccount(OpLogout)
	if err != nil {
		return err
	}
	c.endSession()
	c.log.Info(ctx, "logout", "username", acc.Username)
	c.record(ctx, journal.KindLogout, acc.Username, decimal.Zero, "")
	return nil
}

// LoggedInAs returns the current username and the seconds left before the
// session expires.
func (c *Coordinator) LoggedInAs() (username string, remaining int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, ok := c.session.Current()
	if !ok {
		return "", 0, false
	}
	acc, ok := c.dir.Get(sess.AccountID)
	if !ok {
		return "", 0, false
	}
	return acc.Username, sess.Remaining, true
}

// ToggleSort flips between chronological and amount-sorted display and
// re-renders the movements. It returns the new mode.
func (c *Coordinator) ToggleSort(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	acc, err := c.currentAccount(OpSort)
	if err != nil {
		return c.sorted, err
	}
	c.sorted = !c.sorted
	c.view.RenderMovements(c.rows(acc))
	c.log.Debug(ctx, "sort toggled", "sorted", c.sorted)
	return c.sorted, nil
}

// Activity returns up to limit journal events of the current user, newest
// first, and how many events the journal holds for that user in total.
func (c *Coordinator) Activity(ctx context.Context, limit int) ([]journal.Event, int, error) {
	c.mu.Lock()
	acc, err := c.currentAccount(OpHistory)
	c.mu.Unlock()
	if err != nil {
		return nil, 0, err
	}

	events, err := c.journal.Recent(ctx, acc.Username, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := c.journal.Count(ctx, acc.Username)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// Shutdown cancels the countdown and every pending loan.
func (c *Coordinator) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTimer()
	for id, loan := range c.loans {
		loan.handle.Cancel()
		delete(c.loans, id)
	}
}

// currentAccount resolves the session's account by ID. A session whose
// account is gone counts as logged out.
func (c *Coordinator) currentAccount(op Op) (*accounts.Account, error) {
	sess, ok := c.session.Current()
	if !ok {
		return nil, reject(op, ErrNotLoggedIn)
	}
	acc, ok := c.dir.Get(sess.AccountID)
	if !ok {
		return nil, reject(op, ErrNotLoggedIn)
	}
	return acc, nil
}

func (c *Coordinator) endSession() {
	c.stopTimer()
	c.session.Logout()
	c.view.HideApp()
}

func (c *Coordinator) record(ctx context.Context, kind journal.Kind, username string, amount decimal.Decimal, detail string) {
	err := c.journal.Record(ctx, journal.Event{
		At:       c.now(),
		Kind:     kind,
		Username: username,
		Amount:   amount,
		Detail:   detail,
	})
	if err != nil {
		c.log.Error(ctx, "journal write failed", "kind", kind, "err", err)
	}
}
