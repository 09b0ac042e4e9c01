package port

import (
	"context"

	"github.com/vendomart/vendordash/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

// AuthService owns the vendor session: login against the platform, the
// stored token, and the profile passthrough.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout()
	Profile(ctx context.Context) (*domain.VendorProfile, error)
}

// TriageService decides the terminal outcome of a pending order request.
type TriageService interface {
	Decide(ctx context.Context, request *domain.Order, target domain.OrderStatus) (*domain.Order, error)
	Requests(ctx context.Context, refresh bool) ([]*domain.Order, error)
}

// AdvanceResult reports what RequestAdvance did: either the transition was
// applied, or an OTP challenge is required before it can be.
type AdvanceResult struct {
	Order       *domain.Order
	Target      domain.OrderStatus
	OTPRequired bool
}

// ProgressService advances accepted orders through fulfillment, enforcing
// the OTP gates.
type ProgressService interface {
	CanAdvance(order *domain.Order) bool
	RequestAdvance(ctx context.Context, order *domain.Order) (*AdvanceResult, error)
	Advance(ctx context.Context, order *domain.Order, otp string) (*domain.Order, error)
	Orders(ctx context.Context, refresh bool) ([]*domain.Order, error)
}
