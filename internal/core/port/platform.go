package port

import (
	"context"

	"github.com/vendomart/vendordash/internal/core/domain"
)

//go:generate mockgen -source=platform.go -destination=mock/platform.go -package=mock

// PlatformClient is the remote B2B platform backend. It owns every record;
// the dashboard only reads lists and advances statuses through it.
type PlatformClient interface {
	LoginVendor(ctx context.Context, email, password string) (string, error)

	ListOrderRequests(ctx context.Context) ([]*domain.Order, error)
	ListVendorOrders(ctx context.Context) ([]*domain.Order, error)

	DecideRequest(ctx context.Context, requestID string, status domain.OrderStatus) error
	AdvanceOrder(ctx context.Context, orderID string, status domain.OrderStatus, otp string, serviceID string) error

	VendorProfile(ctx context.Context) (*domain.VendorProfile, error)
}
