package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/vendomart/vendordash/internal/core/domain"
	"github.com/vendomart/vendordash/internal/core/port/mock"
	"github.com/vendomart/vendordash/internal/core/service"
	"go.uber.org/zap"
)

func TestAuth_Login(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	t.Run("login good", func(t *testing.T) {
		platform := mock.NewMockPlatformClient(mockCtrl)
		tokens := mock.NewMockTokenStore(mockCtrl)

		platform.EXPECT().LoginVendor(gomock.Any(), "vendor@acme.test", "secret").
			Return("tok-123", nil)
		tokens.EXPECT().Set("tok-123")

		session := service.NewSession()
		session.ReplaceOrders([]*domain.Order{productOrder("stale", domain.OrderStatusAccepted)})

		auth, err := service.NewAuth(platform, tokens, session, logger)
		assert.NoError(t, err)

		token, err := auth.Login(context.Background(), "vendor@acme.test", "secret")
		assert.NoError(t, err)
		assert.Equal(t, "tok-123", token)

		// A new session drops whatever the previous one cached.
		_, loaded := session.Orders()
		assert.False(t, loaded)
	})

	t.Run("login bad", func(t *testing.T) {
		platform := mock.NewMockPlatformClient(mockCtrl)
		tokens := mock.NewMockTokenStore(mockCtrl)

		platform.EXPECT().LoginVendor(gomock.Any(), "vendor@acme.test", "wrong").
			Return("", domain.ErrUnauthorized)

		auth, err := service.NewAuth(platform, tokens, service.NewSession(), logger)
		assert.NoError(t, err)

		token, err := auth.Login(context.Background(), "vendor@acme.test", "wrong")
		assert.Equal(t, domain.ErrUnauthorized, err)
		assert.Empty(t, token)
	})
}

func TestAuth_Logout(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()
	platform := mock.NewMockPlatformClient(mockCtrl)
	tokens := mock.NewMockTokenStore(mockCtrl)
	tokens.EXPECT().Clear()

	session := service.NewSession()
	session.ReplaceRequests([]*domain.Order{pendingRequest("req-1")})

	auth, err := service.NewAuth(platform, tokens, session, logger)
	assert.NoError(t, err)

	auth.Logout()

	_, loaded := session.Requests()
	assert.False(t, loaded)
}
