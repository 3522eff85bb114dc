// Package cli is the interactive front end of bankist: a line-oriented REPL
// that turns typed commands into coordinator intents and prints what the
// coordinator renders.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/bankist/internal/accounts"
	"github.com/dmitrijs2005/bankist/internal/bank"
	"github.com/dmitrijs2005/bankist/internal/config"
	"github.com/dmitrijs2005/bankist/internal/format"
	"github.com/dmitrijs2005/bankist/internal/journal"
	"github.com/dmitrijs2005/bankist/internal/logging"
	"github.com/dmitrijs2005/bankist/internal/scheduler"
)

// teller is the part of *bank.Coordinator the commands use.
type teller interface {
	Login(ctx context.Context, username string, pin int) error
	Logout(ctx context.Context) error
	Transfer(ctx context.Context, to string, amount decimal.Decimal) error
	RequestLoan(ctx context.Context, amount decimal.Decimal) error
	CloseAccount(ctx context.Context, username string, pin int) error
	ToggleSort(ctx context.Context) (bool, error)
	Activity(ctx context.Context, limit int) ([]journal.Event, int, error)
	LoggedInAs() (username string, remaining int, ok bool)
	Shutdown()
}

type App struct {
	config  *config.Config
	teller  teller
	sched   *scheduler.Cron
	journal journal.Recorder
	log     logging.Logger
	view    *terminalView
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp loads the seed accounts, opens the journal and wires the
// coordinator to a cron scheduler and a terminal view.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out, errOut io.Writer) (*App, error) {
	logger, err := logging.New(errOut, c.LogLevel)
	if err != nil {
		return nil, err
	}

	records, err := accounts.LoadSeed(c.SeedFile)
	if err != nil {
		logger.Error(ctx, "loading seed accounts", "file", c.SeedFile, "err", err)
		return nil, err
	}
	dir, err := accounts.NewDirectory(records, accounts.WithPinCost(c.PinCost))
	if err != nil {
		return nil, err
	}

	var rec journal.Recorder = journal.Noop{}
	if c.JournalDSN != "" {
		j, err := journal.OpenSQLite(ctx, c.JournalDSN)
		if err != nil {
			logger.Error(ctx, "opening journal", "dsn", c.JournalDSN, "err", err)
			return nil, err
		}
		rec = j
	}

	sched := scheduler.NewCron()
	view := newTerminalView(out)
	coord := bank.New(dir, sched, view,
		bank.WithSessionTimeout(int(c.SessionTimeout.Seconds())),
		bank.WithTickInterval(c.TickInterval),
		bank.WithLoanDelay(c.LoanDelay),
		bank.WithCurrencySymbol(c.DefaultCurrencySymbol),
		bank.WithJournal(rec),
		bank.WithLogger(logger),
	)

	logger.Debug(ctx, "app ready", "accounts", dir.Len(), "journal", c.JournalDSN != "")
	return &App{
		config:  c,
		teller:  coord,
		sched:   sched,
		journal: rec,
		log:     logger.With("module", "cli"),
		view:    view,
		reader:  bufio.NewReader(in),
		out:     out,
	}, nil
}

// Run starts the scheduler and the REPL and returns once the user exits or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.shutdown()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.sched.Start()
		<-ctx.Done()
		<-a.sched.Stop().Done()
		return nil
	})

	g.Go(func() error {
		defer cancel()
		fmt.Fprintln(a.out, "Bankist (type 'help' for commands)")

		done := make(chan struct{})
		go func() {
			defer close(done)
			runREPL(ctx, a, a.getStatus, a.reader)
		}()
		select {
		case <-done:
		case <-ctx.Done():
		}
		return nil
	})

	return g.Wait()
}

func (a *App) shutdown() {
	a.teller.Shutdown()
	if err := a.journal.Close(); err != nil {
		a.log.Error(context.Background(), "closing journal", "err", err)
	}
}

func (a *App) isLoggedIn() bool {
	_, _, ok := a.teller.LoggedInAs()
	return ok
}

// getStatus is the prompt decoration: "(jd 01:54)" while logged in.
func (a *App) getStatus() string {
	username, remaining, ok := a.teller.LoggedInAs()
	if !ok {
		return ""
	}
	countdown := a.view.Countdown()
	if countdown == "" {
		countdown = format.Countdown(remaining)
	}
	return fmt.Sprintf("(%s %s)", username, countdown)
}
