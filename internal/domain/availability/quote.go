package availability

import (
	"context"
	"sync"

	"toolshare/internal/domain/pricing"
)

type QuoteState int

const (
	QuoteNone QuoteState = iota
	QuotePending
	QuoteResolved
	QuoteUnavailable
)

func (s QuoteState) String() string {
	switch s {
	case QuotePending:
		return "pending"
	case QuoteResolved:
		return "resolved"
	case QuoteUnavailable:
		return "unavailable"
	default:
		return "none"
	}
}

type Quote struct {
	State QuoteState
	Price pricing.Money
	Seq   uint64
	Err   error
}

// QuoteTracker sequences asynchronous quote lookups. Only the response to the most
// recently issued request is applied; everything older is dropped.
type QuoteTracker struct {
	mu      sync.Mutex
	seq     uint64
	current Quote
	cancel  context.CancelFunc
	changed chan struct{}
}

func NewQuoteTracker() *QuoteTracker {
	return &QuoteTracker{changed: make(chan struct{})}
}

// Issue supersedes any in-flight lookup and returns the sequence number and context for the new one.
func (t *QuoteTracker) Issue(parent context.Context) (uint64, context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelLocked()
	t.seq++
	ctx, cancel := context.WithCancel(parent)
	t.cancel = cancel
	t.setLocked(Quote{State: QuotePending, Seq: t.seq})
	return t.seq, ctx
}

// Resolve applies a price if seq is still the latest issued request.
func (t *QuoteTracker) Resolve(seq uint64, price pricing.Money) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if seq != t.seq || t.current.State != QuotePending {
		return false
	}
	t.cancelLocked()
	t.setLocked(Quote{State: QuoteResolved, Price: price, Seq: seq})
	return true
}

// Fail marks the latest request unavailable; stale failures are ignored.
func (t *QuoteTracker) Fail(seq uint64, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if seq != t.seq || t.current.State != QuotePending {
		return false
	}
	t.cancelLocked()
	t.setLocked(Quote{State: QuoteUnavailable, Seq: seq, Err: err})
	return true
}

// Invalidate drops the current quote and any in-flight lookup.
func (t *QuoteTracker) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelLocked()
	t.seq++
	t.setLocked(Quote{State: QuoteNone, Seq: t.seq})
}

func (t *QuoteTracker) Current() Quote {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Changed returns a channel closed at the next state change.
func (t *QuoteTracker) Changed() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.changed
}

func (t *QuoteTracker) cancelLocked() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

func (t *QuoteTracker) setLocked(q Quote) {
	t.current = q
	close(t.changed)
	t.changed = make(chan struct{})
}
