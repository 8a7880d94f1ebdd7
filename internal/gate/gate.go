package gate

import (
	"sync"
	"time"

	"github.com/estuda-ai/backend/internal/id"
)

// State of the password gate.
type State int

const (
	StateLocked State = iota
	StateUnlocked
	StateTimedOut
)

func (s State) String() string {
	switch s {
	case StateLocked:
		return "locked"
	case StateUnlocked:
		return "unlocked"
	case StateTimedOut:
		return "timed_out"
	}
	return "unknown"
}

// Result of one password submission.
type Result struct {
	State             State
	Token             string        // set only on success
	RemainingAttempts int           // meaningful while locked
	RetryIn           time.Duration // meaningful while timed out
}

// maxTokens bounds how many minted tokens stay valid at once. The gate
// serves one user; a handful of browser tabs is the realistic ceiling.
const maxTokens = 8

// Gate keeps the whole application behind a fixed shared secret with
// attempt-limiting and a timed lockout. This is a deterrent, not a security
// boundary: nothing here is persisted, and a restart resets everything.
type Gate struct {
	mu          sync.Mutex
	secret      string
	maxAttempts int
	lockout     time.Duration
	now         func() time.Time

	attempts    int
	lockedUntil time.Time
	tokens      []string // newest last; oldest evicted past maxTokens
}

func New(secret string, maxAttempts int, lockout time.Duration) *Gate {
	return &Gate{
		secret:      secret,
		maxAttempts: maxAttempts,
		lockout:     lockout,
		now:         time.Now,
	}
}

// Submit checks a password. While timed out, submissions are rejected without
// consuming an attempt. Reaching the attempt limit starts the lockout
// countdown; once it elapses the full attempt budget is restored.
func (g *Gate) Submit(password string) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.refresh()

	if remaining := g.lockedUntil.Sub(g.now()); remaining > 0 {
		return Result{State: StateTimedOut, RetryIn: remaining}
	}

	if password == g.secret {
		token := id.GenerateToken()
		g.tokens = append(g.tokens, token)
		if len(g.tokens) > maxTokens {
			g.tokens = g.tokens[len(g.tokens)-maxTokens:]
		}
		g.attempts = 0
		return Result{State: StateUnlocked, Token: token, RemainingAttempts: g.maxAttempts}
	}

	g.attempts++
	if g.attempts >= g.maxAttempts {
		g.lockedUntil = g.now().Add(g.lockout)
		return Result{State: StateTimedOut, RetryIn: g.lockout}
	}
	return Result{State: StateLocked, RemainingAttempts: g.maxAttempts - g.attempts}
}

// Authorized reports whether a bearer token was minted by this gate and has
// not been evicted.
func (g *Gate) Authorized(token string) bool {
	if token == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, t := range g.tokens {
		if t == token {
			return true
		}
	}
	return false
}

// State reports the gate's submission state, expiring a finished lockout.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.refresh()
	if g.lockedUntil.After(g.now()) {
		return StateTimedOut
	}
	return StateLocked
}

// refresh resets the attempt counter once the lockout deadline has passed.
// Expiry is evaluated lazily against the clock; there is no background timer.
func (g *Gate) refresh() {
	if !g.lockedUntil.IsZero() && !g.lockedUntil.After(g.now()) {
		g.lockedUntil = time.Time{}
		g.attempts = 0
	}
}
