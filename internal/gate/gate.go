package gate

import (
	"errors"
	"sync"
)

// ErrNotAuthorized is returned when a non-advisor attempts to change or
// inspect the activation state.
var ErrNotAuthorized = errors.New("not authorized")

// Authorizer answers whether a user may operate the gate.
type Authorizer interface {
	IsAdvisor(userID int64) bool
}

// Gate holds the single process-wide activation flag. All mutation goes
// through Activate/Deactivate so the authorization invariant is enforced
// in one place. The flag is not persisted; a restart resets it to the
// configured default.
type Gate struct {
	auth Authorizer

	mu     sync.RWMutex
	active bool
}

// New creates a gate in the given initial state.
func New(auth Authorizer, activeOnStart bool) *Gate {
	return &Gate{auth: auth, active: activeOnStart}
}

// Activate turns the bot on. Idempotent for advisors, ErrNotAuthorized for
// everyone else with no state change.
func (g *Gate) Activate(requester int64) error {
	return g.set(requester, true)
}

// Deactivate turns the bot off.
func (g *Gate) Deactivate(requester int64) error {
	return g.set(requester, false)
}

func (g *Gate) set(requester int64, active bool) error {
	if !g.auth.IsAdvisor(requester) {
		return ErrNotAuthorized
	}
	g.mu.Lock()
	g.active = active
	g.mu.Unlock()
	return nil
}

// Status returns the current flag without mutating it. Advisor-only.
func (g *Gate) Status(requester int64) (bool, error) {
	if !g.auth.IsAdvisor(requester) {
		return false, ErrNotAuthorized
	}
	return g.ShouldRespond(), nil
}

// ShouldRespond reports whether inbound questions should be answered.
// Checked before any LLM call so a deactivated bot does no expensive work.
func (g *Gate) ShouldRespond() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.active
}
