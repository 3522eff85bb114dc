// Package session tracks which account is authenticated and how many
// seconds remain before it is logged out automatically.
//
// The machine has two states. LoggedOut moves to LoggedIn on Login; LoggedIn
// counts down on every Tick and falls back to LoggedOut when the countdown
// reaches zero, when the account is no longer valid, or on Logout. A new
// Login always starts a fresh Session; nothing carries over.
package session

import (
	"github.com/google/uuid"
)

// DefaultTimeout is the countdown, in seconds, restored on login and after
// every mutating transaction.
const DefaultTimeout = 120

// State of the machine.
type State int

const (
	LoggedOut State = iota
	LoggedIn
)

func (s State) String() string {
	if s == LoggedIn {
		return "logged_in"
	}
	return "logged_out"
}

// Session is one login. It refers to its account by ID only.
type Session struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Remaining int
}

// Machine holds at most one Session.
type Machine struct {
	timeout int
	current *Session
}

// NewMachine returns a logged out machine whose countdown starts at
// timeoutSeconds. Non-positive values select DefaultTimeout.
func NewMachine(timeoutSeconds int) *Machine {
	if timeoutSeconds <= 0 {
		timeoutSeconds = DefaultTimeout
	}
	return &Machine{timeout: timeoutSeconds}
}

// Timeout returns the countdown start value in seconds.
func (m *Machine) Timeout() int { return m.timeout }

// State returns the current state.
func (m *Machine) State() State {
	if m.current == nil {
		return LoggedOut
	}
	return LoggedIn
}

// Current returns a copy of the active session.
func (m *Machine) Current() (Session, bool) {
	if m.current == nil {
		return Session{}, false
	}
	return *m.current, true
}

// Login replaces any active session with a fresh one for accountID. The
// caller has already authenticated the credentials.
func (m *Machine) Login(accountID uuid.UUID) Session {
	m.current = &Session{
		ID:        uuid.New(),
		AccountID: accountID,
		Remaining: m.timeout,
	}
	return *m.current
}

// Tick counts one second down. valid is asked whether the session's account
// still exists; when it does not, or when the countdown reaches zero, the
// machine logs out and expired is true. Ticking a logged out machine is a
// no-op that reports expired.
func (m *Machine) Tick(valid func(accountID uuid.UUID) bool) (remaining int, expired bool) {
	if m.current == nil {
		return 0, true
	}
	if valid != nil && !valid(m.current.AccountID) {
		m.current = nil
		return 0, true
	}
	m.current.Remaining--
	if m.current.Remaining <= 0 {
		m.current = nil
		return 0, true
	}
	return m.current.Remaining, false
}

// ResetTimer restores the full countdown of the active session.
func (m *Machine) ResetTimer() {
	if m.current != nil {
		m.current.Remaining = m.timeout
	}
}

// Logout ends the active session, if any.
func (m *Machine) Logout() {
	m.current = nil
}
