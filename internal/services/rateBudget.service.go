package services

import (
	"context"
	"sync"
	"time"

	"eventaggregator/internal/metrics"

	logger "github.com/Bparsons0904/goLogger"
)

// Clock lets tests drive the rate window deterministically.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// BudgetDecision is the result of TryConsume: either Proceed, or wait Wait
// before trying again.
type BudgetDecision struct {
	Proceed bool
	Wait    time.Duration
}

type RateBudgetSnapshot struct {
	Remaining int       `json:"remaining"`
	Allowance int       `json:"allowance"`
	ResetAt   time.Time `json:"resetAt"`
}

// RateBudgetService tracks the provider quota shared by every upstream call
// in the process. All reads and writes happen under mu.
type RateBudgetService struct {
	mu        sync.Mutex
	remaining int
	allowance int
	window    time.Duration
	resetAt   time.Time
	clock     Clock
	log       logger.Logger
}

func NewRateBudgetService(allowance int, window time.Duration, clock Clock) *RateBudgetService {
	if clock == nil {
		clock = systemClock{}
	}

	metrics.RateBudgetRemaining.Set(float64(allowance))

	return &RateBudgetService{
		remaining: allowance,
		allowance: allowance,
		window:    window,
		resetAt:   clock.Now().Add(window),
		clock:     clock,
		log:       logger.New("RateBudgetService"),
	}
}

func (r *RateBudgetService) TryConsume() BudgetDecision {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.remaining > 0 {
		r.remaining--
		metrics.RateBudgetRemaining.Set(float64(r.remaining))
		return BudgetDecision{Proceed: true}
	}

	wait := r.resetAt.Sub(r.clock.Now())
	if wait < 0 {
		wait = 0
	}
	return BudgetDecision{Wait: wait}
}

// Observe replaces the remaining count with the provider's value. A nil
// value means the header was absent and leaves the budget untouched.
func (r *RateBudgetService) Observe(reported *int) {
	if reported == nil {
		return
	}

	value := *reported
	if value < 0 {
		value = 0
	}

	r.mu.Lock()
	r.remaining = value
	r.mu.Unlock()

	metrics.RateBudgetRemaining.Set(float64(value))
}

// ObserveReset moves the window end to the provider's reported instant.
func (r *RateBudgetService) ObserveReset(resetAt time.Time) {
	if resetAt.IsZero() {
		return
	}

	r.mu.Lock()
	r.resetAt = resetAt
	r.mu.Unlock()
}

// Acquire blocks until one unit of budget is consumed or ctx is done.
func (r *RateBudgetService) Acquire(ctx context.Context) error {
	log := r.log.TraceFromContext(ctx).Function("Acquire")

	for {
		decision := r.TryConsume()
		if decision.Proceed {
			return nil
		}

		metrics.RateBudgetWaits.Inc()
		log.Warn("Rate budget exhausted, waiting for window reset", "wait", decision.Wait)

		select {
		case <-ctx.Done():
			return log.Err("context cancelled while waiting for rate budget", ctx.Err())
		case <-r.clock.After(decision.Wait):
		}

		r.rollover()
	}
}

// rollover refills the budget once the window has passed. Concurrent
// waiters waking together refill it only once.
func (r *RateBudgetService) rollover() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if now.Before(r.resetAt) {
		return
	}

	r.remaining = r.allowance
	r.resetAt = now.Add(r.window)
	metrics.RateBudgetRemaining.Set(float64(r.remaining))
}

func (r *RateBudgetService) Snapshot() RateBudgetSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return RateBudgetSnapshot{
		Remaining: r.remaining,
		Allowance: r.allowance,
		ResetAt:   r.resetAt,
	}
}
