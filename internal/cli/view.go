package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/dmitrijs2005/bankist/internal/bank"
)

// terminalView renders coordinator output as text. The countdown is not
// printed on every tick; it is kept for the prompt. Notices may arrive from
// scheduler goroutines, so writes are serialized.
type terminalView struct {
	mu        sync.Mutex
	w         io.Writer
	countdown string
}

var _ bank.Presenter = (*terminalView)(nil)

func newTerminalView(w io.Writer) *terminalView {
	return &terminalView{w: w}
}

func (v *terminalView) RenderMovements(rows []bank.MovementRow) {
	v.mu.Lock()
	defer v.mu.Unlock()

	tw := tabwriter.NewWriter(v.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, r := range rows {
		label := fmt.Sprintf("%d %s", r.Index, strings.ToUpper(string(r.Type)))
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", label, r.DisplayDate, r.FormattedAmount)
	}
	_ = tw.Flush()
}

func (v *terminalView) RenderBalance(formatted string) {
	v.printf("Balance: %s\n", formatted)
}

func (v *terminalView) RenderSummary(in, out, interest string) {
	v.printf("In: %s  Out: %s  Interest: %s\n", in, out, interest)
}

func (v *terminalView) RenderWelcome(firstName string) {
	v.printf("Welcome back, %s\n", firstName)
}

func (v *terminalView) RenderDate(formatted string) {
	v.printf("As of %s\n", formatted)
}

func (v *terminalView) RenderTimer(countdown string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.countdown = countdown
}

func (v *terminalView) ShowApp() {}

func (v *terminalView) HideApp() {
	v.mu.Lock()
	v.countdown = ""
	v.mu.Unlock()
	v.printf("Log in to get started\n")
}

func (v *terminalView) Notify(msg string) {
	v.printf("\n! %s\n", msg)
}

// Countdown is the last rendered timer value, "" when logged out.
func (v *terminalView) Countdown() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.countdown
}

func (v *terminalView) printf(format string, args ...any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.w, format, args...)
}
