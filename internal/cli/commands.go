package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/bankist/internal/ledger"
)

const defaultHistoryLimit = 10

// report prints err for the user and hands it back to the caller.
func (a *App) report(err error) error {
	if err != nil {
		printlnFn(describe(err))
	}
	return err
}

func (a *App) Login(ctx context.Context, args []string) error {
	username, err := argOrPrompt(args, 0, a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	pin, err := GetPin(a.reader, a.out)
	if err != nil {
		return err
	}
	return a.report(a.teller.Login(ctx, username, pin))
}

func (a *App) Logout(ctx context.Context) error {
	return a.report(a.teller.Logout(ctx))
}

func (a *App) Transfer(ctx context.Context, args []string) error {
	to, err := argOrPrompt(args, 0, a.reader, "Transfer to", a.out)
	if err != nil {
		return err
	}
	amount, err := argOrPrompt(args, 1, a.reader, "Amount", a.out)
	if err != nil {
		return err
	}
	if err := a.report(a.teller.Transfer(ctx, to, ledger.ParseAmount(amount))); err != nil {
		return err
	}
	printlnFn("Transfer complete")
	return nil
}

func (a *App) Loan(ctx context.Context, args []string) error {
	amount, err := argOrPrompt(args, 0, a.reader, "Loan amount", a.out)
	if err != nil {
		return err
	}
	if err := a.report(a.teller.RequestLoan(ctx, ledger.ParseAmount(amount))); err != nil {
		return err
	}
	printlnFn("Loan approved, it will be credited shortly")
	return nil
}

// Close asks for the username and PIN again before closing the account.
func (a *App) Close(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Confirm username", a.out)
	if err != nil {
		return err
	}
	pin, err := GetPin(a.reader, a.out)
	if err != nil {
		return err
	}
	if err := a.report(a.teller.CloseAccount(ctx, username, pin)); err != nil {
		return err
	}
	printlnFn("Account closed")
	return nil
}

func (a *App) Sort(ctx context.Context) error {
	sorted, err := a.teller.ToggleSort(ctx)
	if err := a.report(err); err != nil {
		return err
	}
	if sorted {
		printlnFn("Sorted by amount")
	} else {
		printlnFn("Sorted by date")
	}
	return nil
}

func (a *App) History(ctx context.Context, args []string) error {
	limit := defaultHistoryLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			printlnFn("Usage: history [n]")
			return fmt.Errorf("invalid history limit %q", args[0])
		}
		limit = n
	}

	events, total, err := a.teller.Activity(ctx, limit)
	if err := a.report(err); err != nil {
		return err
	}
	if len(events) == 0 {
		printlnFn("No activity recorded")
		return nil
	}
	for _, e := range events {
		line := fmt.Sprintf("%s  %-17s", e.At.Format("2006-01-02 15:04:05"), e.Kind)
		if !e.Amount.IsZero() {
			line += "  " + e.Amount.StringFixed(2)
		}
		if e.Detail != "" {
			line += "  " + e.Detail
		}
		printlnFn(line)
	}
	printlnFn(fmt.Sprintf("Showing %d of %d events", len(events), total))
	return nil
}
