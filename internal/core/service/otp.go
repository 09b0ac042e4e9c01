package service

import (
	"context"
	"sync"

	"github.com/vendomart/vendordash/internal/core/domain"
)

// OtpChallenge collects the one-time passcode an OTP-gated transition needs.
// A rejected code keeps the challenge open with the backend's message, so
// the caller can re-enter and resubmit without restarting the advance. A new
// challenge for the same order starts with clean input state.
type OtpChallenge struct {
	progress *Progress
	order    *domain.Order
	target   domain.OrderStatus

	mu      sync.Mutex
	code    string
	lastErr error
	waiting bool
	done    bool
}

// Target is the status the challenge will move the order to.
func (c *OtpChallenge) Target() domain.OrderStatus {
	return c.target
}

// Open reports whether the challenge still accepts submissions.
func (c *OtpChallenge) Open() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.done
}

// Err returns the error from the last submission, nil after Cancel or
// success.
func (c *OtpChallenge) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Code returns the currently entered code.
func (c *OtpChallenge) Code() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.code
}

// Submit validates the code and applies the transition. Local validation
// failures never reach the backend. A backend rejection is recorded and the
// challenge stays open.
func (c *OtpChallenge) Submit(ctx context.Context, code string) (*domain.Order, error) {
	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		return nil, domain.ErrChallengeClosed
	}
	if c.waiting {
		c.mu.Unlock()
		return nil, domain.ErrOtpSubmissionPending
	}
	c.code = code
	if err := domain.ValidateOTP(code); err != nil {
		c.lastErr = err
		c.mu.Unlock()
		return nil, err
	}
	c.waiting = true
	c.mu.Unlock()

	updated, err := c.progress.apply(ctx, c.order, c.target, code)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.waiting = false
	if err != nil {
		c.lastErr = err
		return nil, err
	}
	c.done = true
	c.lastErr = nil
	c.code = ""
	return updated, nil
}

// Cancel clears the entered code and any error, leaving the order
// untouched. It is refused while a submission is waiting on the backend.
func (c *OtpChallenge) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.waiting {
		return domain.ErrOtpSubmissionPending
	}
	c.code = ""
	c.lastErr = nil
	return nil
}
