package service

import (
	"context"
	"sync"
	"time"

	"github.com/vendomart/vendordash/internal/core/domain"
	"github.com/vendomart/vendordash/internal/core/port"
	"go.uber.org/zap"
)

// Progress advances accepted orders through fulfillment:
// Accepted -> Started -> Completed. Transitions gated by an OTP go through
// an OtpChallenge instead of being applied directly.
type Progress struct {
	platform port.PlatformClient
	session  *Session
	logger   *zap.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewProgress(platform port.PlatformClient, session *Session, logger *zap.Logger) (*Progress, error) {
	return &Progress{
		platform: platform,
		session:  session,
		logger:   logger,
		inflight: make(map[string]struct{}),
	}, nil
}

// Orders returns the vendor's post-acceptance orders, cached per session.
func (p *Progress) Orders(ctx context.Context, refresh bool) ([]*domain.Order, error) {
	if !refresh {
		if cached, ok := p.session.Orders(); ok {
			return cached, nil
		}
	}

	list, err := p.platform.ListVendorOrders(ctx)
	if err != nil {
		p.logger.Error("list vendor orders", zap.Error(err))
		return nil, err
	}
	p.session.ReplaceOrders(list)
	return list, nil
}

// CanAdvance reports whether the order has a next status and no transition
// currently in flight. Callers disable the advance action while this is
// false.
func (p *Progress) CanAdvance(order *domain.Order) bool {
	if !domain.CanAdvance(order.Status) {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	_, busy := p.inflight[order.ID]
	return !busy
}

// RequestAdvance computes the next status for the order. When the transition
// is OTP-gated the result reports OTPRequired and nothing is sent; the
// caller collects the code and finishes through an OtpChallenge or Advance.
func (p *Progress) RequestAdvance(ctx context.Context, order *domain.Order) (*port.AdvanceResult, error) {
	target, err := p.target(order)
	if err != nil {
		return nil, err
	}

	if domain.RequiresOTP(order.OrderType, target, order.HourlyBased()) {
		return &port.AdvanceResult{Order: order, Target: target, OTPRequired: true}, nil
	}

	updated, err := p.apply(ctx, order, target, "")
	if err != nil {
		return nil, err
	}
	return &port.AdvanceResult{Order: updated, Target: target}, nil
}

// Advance applies the next transition with the supplied code. For gated
// transitions the code is validated locally first, so a malformed OTP never
// reaches the backend.
func (p *Progress) Advance(ctx context.Context, order *domain.Order, otp string) (*domain.Order, error) {
	target, err := p.target(order)
	if err != nil {
		return nil, err
	}

	if domain.RequiresOTP(order.OrderType, target, order.HourlyBased()) {
		if err := domain.ValidateOTP(otp); err != nil {
			return nil, err
		}
	} else {
		otp = ""
	}

	return p.apply(ctx, order, target, otp)
}

// NewChallenge opens an OTP challenge for the order's next transition.
func (p *Progress) NewChallenge(order *domain.Order) (*OtpChallenge, error) {
	target, err := p.target(order)
	if err != nil {
		return nil, err
	}
	if !domain.RequiresOTP(order.OrderType, target, order.HourlyBased()) {
		return nil, domain.ErrOTPNotRequired
	}
	return &OtpChallenge{
		progress: p,
		order:    order,
		target:   target,
	}, nil
}

func (p *Progress) target(order *domain.Order) (domain.OrderStatus, error) {
	if order.Status == domain.OrderStatusCompleted {
		return "", domain.ErrOrderCompleted
	}
	target, ok := domain.NextStatus(order.Status)
	if !ok {
		return "", domain.ErrNotAdvanceable
	}
	return target, nil
}

func (p *Progress) apply(ctx context.Context, order *domain.Order, target domain.OrderStatus, otp string) (*domain.Order, error) {
	if !p.begin(order.ID) {
		return nil, domain.ErrTransitionInFlight
	}
	defer p.end(order.ID)

	err := p.platform.AdvanceOrder(ctx, order.ID, target, otp, order.PrimaryServiceID())
	if err != nil {
		p.logger.Error("advance order",
			zap.String("order", order.ID),
			zap.String("target", string(target)),
			zap.Error(err))
		return nil, domain.NewTransitionError(target, err)
	}

	updated := order.Clone()
	updated.Status = target
	updated.UpdatedAt = time.Now()
	p.session.PatchOrder(updated)

	p.logger.Info("order advanced",
		zap.String("order", order.ID),
		zap.String("status", string(target)))
	return updated, nil
}

func (p *Progress) begin(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, busy := p.inflight[id]; busy {
		return false
	}
	p.inflight[id] = struct{}{}
	return true
}

func (p *Progress) end(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inflight, id)
}
