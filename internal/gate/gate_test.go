package gate

import (
	"testing"
	"time"
)

const (
	testSecret  = "segredo-de-teste"
	maxAttempts = 10
	lockout     = 60 * time.Second
)

// newTestGate returns a gate driven by a controllable clock.
func newTestGate() (*Gate, *time.Time) {
	now := time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC)
	g := New(testSecret, maxAttempts, lockout)
	g.now = func() time.Time { return now }
	return g, &now
}

func TestSubmit_CorrectPasswordUnlocks(t *testing.T) {
	g, _ := newTestGate()

	res := g.Submit(testSecret)
	if res.State != StateUnlocked {
		t.Fatalf("expected unlocked, got %v", res.State)
	}
	if res.Token == "" {
		t.Error("expected a token on success")
	}
	if !g.Authorized(res.Token) {
		t.Error("expected the minted token to be authorized")
	}
}

func TestSubmit_WrongPasswordCountsDown(t *testing.T) {
	g, _ := newTestGate()

	for i := 1; i <= maxAttempts-1; i++ {
		res := g.Submit("errada")
		if res.State != StateLocked {
			t.Fatalf("attempt %d: expected locked, got %v", i, res.State)
		}
		if res.RemainingAttempts != maxAttempts-i {
			t.Errorf("attempt %d: expected %d remaining, got %d", i, maxAttempts-i, res.RemainingAttempts)
		}
	}

	// 9 failures leave 1 attempt; the 10th triggers the lockout.
	res := g.Submit("errada")
	if res.State != StateTimedOut {
		t.Fatalf("expected timeout after %d failures, got %v", maxAttempts, res.State)
	}
	if res.RetryIn != lockout {
		t.Errorf("expected %v retry window, got %v", lockout, res.RetryIn)
	}
}

func TestSubmit_TimedOutRejectsWithoutConsumingAttempts(t *testing.T) {
	g, clock := newTestGate()

	for i := 0; i < maxAttempts; i++ {
		g.Submit("errada")
	}

	// Even the correct password is rejected during the lockout.
	res := g.Submit(testSecret)
	if res.State != StateTimedOut {
		t.Fatalf("expected timeout, got %v", res.State)
	}

	// Half the lockout later, still timed out, with a shrinking window.
	*clock = clock.Add(30 * time.Second)
	res = g.Submit("errada")
	if res.State != StateTimedOut {
		t.Fatalf("expected timeout, got %v", res.State)
	}
	if res.RetryIn != 30*time.Second {
		t.Errorf("expected 30s left, got %v", res.RetryIn)
	}
}

func TestSubmit_LockoutExpiryRestoresFullBudget(t *testing.T) {
	g, clock := newTestGate()

	for i := 0; i < maxAttempts; i++ {
		g.Submit("errada")
	}

	*clock = clock.Add(lockout)

	if g.State() != StateLocked {
		t.Fatal("expected gate to return to locked after the lockout")
	}

	res := g.Submit("errada")
	if res.State != StateLocked {
		t.Fatalf("expected locked, got %v", res.State)
	}
	if res.RemainingAttempts != maxAttempts-1 {
		t.Errorf("expected full budget restored (%d remaining), got %d", maxAttempts-1, res.RemainingAttempts)
	}
}

func TestAuthorized_OldestTokenEvictedPastCap(t *testing.T) {
	g, _ := newTestGate()

	first := g.Submit(testSecret).Token
	var latest string
	for i := 0; i < maxTokens; i++ {
		latest = g.Submit(testSecret).Token
	}

	if g.Authorized(first) {
		t.Error("expected the oldest token to be evicted once the cap is exceeded")
	}
	if !g.Authorized(latest) {
		t.Error("expected the newest token to stay valid")
	}
	if len(g.tokens) != maxTokens {
		t.Errorf("expected at most %d retained tokens, got %d", maxTokens, len(g.tokens))
	}
}

func TestAuthorized_UnknownToken(t *testing.T) {
	g, _ := newTestGate()

	if g.Authorized("") || g.Authorized("nope") {
		t.Error("expected unknown tokens to be rejected")
	}
}
