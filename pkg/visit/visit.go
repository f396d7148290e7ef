// Package visit scopes asynchronous work to the latest visit of a screen.
//
// Every Start cancels the work started before it, and Current reports whether a
// ticket still belongs to the newest visit. Results of superseded work are
// dropped by the caller instead of being applied to stale state.
package visit

import (
	"context"
	"sync"
)

type Ticket uint64

type Tracker struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

func (t *Tracker) Start(parent context.Context) (context.Context, Ticket) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	t.gen++
	t.cancel = cancel
	return ctx, Ticket(t.gen)
}

func (t *Tracker) Current(tk Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return uint64(tk) == t.gen && t.cancel != nil
}

// Stop cancels in-flight work and invalidates every ticket handed out so far.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.gen++
}
