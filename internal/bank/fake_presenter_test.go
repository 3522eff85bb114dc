package bank

import "sync"

type fakePresenter struct {
	mu sync.Mutex

	rows     []MovementRow
	balance  string
	in       string
	out      string
	interest string
	welcome  string
	date     string
	timers   []string
	visible  bool
	hides    int
	notices  []string
}

func (p *fakePresenter) RenderMovements(rows []MovementRow) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rows = rows
}

func (p *fakePresenter) RenderBalance(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.balance = s
}

func (p *fakePresenter) RenderSummary(in, out, interest string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.in, p.out, p.interest = in, out, interest
}

func (p *fakePresenter) RenderWelcome(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.welcome = name
}

func (p *fakePresenter) RenderDate(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.date = s
}

func (p *fakePresenter) RenderTimer(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.timers = append(p.timers, s)
}

func (p *fakePresenter) ShowApp() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = true
}

func (p *fakePresenter) HideApp() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = false
	p.hides++
}

func (p *fakePresenter) Notify(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notices = append(p.notices, msg)
}

func (p *fakePresenter) lastTimer() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.timers) == 0 {
		return ""
	}
	return p.timers[len(p.timers)-1]
}
