package service

import (
	"context"
	"sync"
	"time"

	"github.com/vendomart/vendordash/internal/core/domain"
	"github.com/vendomart/vendordash/internal/core/port"
	"go.uber.org/zap"
)

// Triage applies the one-shot Pending -> Accepted/Rejected decision for
// incoming order requests.
type Triage struct {
	platform port.PlatformClient
	session  *Session
	logger   *zap.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewTriage(platform port.PlatformClient, session *Session, logger *zap.Logger) (*Triage, error) {
	return &Triage{
		platform: platform,
		session:  session,
		logger:   logger,
		inflight: make(map[string]struct{}),
	}, nil
}

// Requests returns the vendor's order requests, from the session cache when
// it is warm and refresh is not forced.
func (t *Triage) Requests(ctx context.Context, refresh bool) ([]*domain.Order, error) {
	if !refresh {
		if cached, ok := t.session.Requests(); ok {
			return cached, nil
		}
	}

	list, err := t.platform.ListOrderRequests(ctx)
	if err != nil {
		t.logger.Error("list order requests", zap.Error(err))
		return nil, err
	}
	t.session.ReplaceRequests(list)
	return list, nil
}

// Decide sends the triage decision for a pending request. The source record
// is never mutated; on success an updated copy is returned and the cached
// list is patched in place.
func (t *Triage) Decide(ctx context.Context, request *domain.Order, target domain.OrderStatus) (*domain.Order, error) {
	if target != domain.OrderStatusAccepted && target != domain.OrderStatusRejected {
		return nil, domain.ErrInvalidDecision
	}
	if request.Status != domain.OrderStatusPending {
		return nil, domain.ErrRequestDecided
	}

	if !t.begin(request.ID) {
		return nil, domain.ErrTransitionInFlight
	}
	defer t.end(request.ID)

	if err := t.platform.DecideRequest(ctx, request.ID, target); err != nil {
		t.logger.Error("decide order request",
			zap.String("request", request.ID),
			zap.String("target", string(target)),
			zap.Error(err))
		return nil, err
	}

	updated := request.Clone()
	updated.Status = target
	updated.UpdatedAt = time.Now()
	t.session.PatchRequest(updated)

	t.logger.Info("order request decided",
		zap.String("request", request.ID),
		zap.String("status", string(target)))
	return updated, nil
}

func (t *Triage) begin(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, busy := t.inflight[id]; busy {
		return false
	}
	t.inflight[id] = struct{}{}
	return true
}

func (t *Triage) end(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.inflight, id)
}
