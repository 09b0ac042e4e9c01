package service

import (
	"sync"

	"github.com/samber/lo"
	"github.com/vendomart/vendordash/internal/core/domain"
)

// Session mirrors the vendor's request and order lists for the lifetime of a
// sign-in. The platform backend stays the system of record; the cache exists
// so a single updated record can be reconciled in place instead of reloading
// the whole collection.
type Session struct {
	mu             sync.RWMutex
	requests       []*domain.Order
	orders         []*domain.Order
	requestsLoaded bool
	ordersLoaded   bool
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) ReplaceRequests(list []*domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = cloneAll(list)
	s.requestsLoaded = true
}

func (s *Session) ReplaceOrders(list []*domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = cloneAll(list)
	s.ordersLoaded = true
}

// Requests returns a copy of the cached request list. The second return is
// false until the first ReplaceRequests.
func (s *Session) Requests() ([]*domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.requests), s.requestsLoaded
}

func (s *Session) Orders() ([]*domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.orders), s.ordersLoaded
}

// PatchRequest swaps the single record matching updated.ID. Unknown ids are
// ignored: the next full refetch will pick the record up.
func (s *Session) PatchRequest(updated *domain.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return patch(s.requests, updated)
}

func (s *Session) PatchOrder(updated *domain.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return patch(s.orders, updated)
}

// Reset drops everything, used on logout and on a fresh login.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
	s.orders = nil
	s.requestsLoaded = false
	s.ordersLoaded = false
}

func patch(list []*domain.Order, updated *domain.Order) bool {
	_, idx, found := lo.FindIndexOf(list, func(o *domain.Order) bool {
		return o.ID == updated.ID
	})
	if !found {
		return false
	}
	list[idx] = updated.Clone()
	return true
}

func cloneAll(list []*domain.Order) []*domain.Order {
	return lo.Map(list, func(o *domain.Order, _ int) *domain.Order {
		return o.Clone()
	})
}
