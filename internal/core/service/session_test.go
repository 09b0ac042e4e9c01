package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vendomart/vendordash/internal/core/domain"
	"github.com/vendomart/vendordash/internal/core/service"
)

func TestSession_PatchByIdentifier(t *testing.T) {
	session := service.NewSession()

	_, loaded := session.Orders()
	assert.False(t, loaded)

	session.ReplaceOrders([]*domain.Order{
		productOrder("o-1", domain.OrderStatusAccepted),
		productOrder("o-2", domain.OrderStatusStarted),
	})

	updated := productOrder("o-2", domain.OrderStatusCompleted)
	assert.True(t, session.PatchOrder(updated))
	assert.False(t, session.PatchOrder(productOrder("o-99", domain.OrderStatusStarted)))

	orders, loaded := session.Orders()
	assert.True(t, loaded)
	assert.Len(t, orders, 2)
	assert.Equal(t, domain.OrderStatusAccepted, orders[0].Status)
	assert.Equal(t, domain.OrderStatusCompleted, orders[1].Status)
}

func TestSession_ReturnsCopies(t *testing.T) {
	session := service.NewSession()
	session.ReplaceRequests([]*domain.Order{pendingRequest("req-1")})

	first, _ := session.Requests()
	first[0].Status = domain.OrderStatusRejected
	first[0].Items[0].Quantity = 999

	second, _ := session.Requests()
	assert.Equal(t, domain.OrderStatusPending, second[0].Status)
	assert.Equal(t, 40, second[0].Items[0].Quantity)
}

func TestSession_Reset(t *testing.T) {
	session := service.NewSession()
	session.ReplaceRequests([]*domain.Order{pendingRequest("req-1")})
	session.ReplaceOrders([]*domain.Order{productOrder("o-1", domain.OrderStatusAccepted)})

	session.Reset()

	requests, loaded := session.Requests()
	assert.False(t, loaded)
	assert.Empty(t, requests)

	orders, loaded := session.Orders()
	assert.False(t, loaded)
	assert.Empty(t, orders)
}
