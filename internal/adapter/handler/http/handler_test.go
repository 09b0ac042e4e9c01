package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vendomart/vendordash/internal/adapter/config"
	handler "github.com/vendomart/vendordash/internal/adapter/handler/http"
	"github.com/vendomart/vendordash/internal/adapter/tokenstore"
	"github.com/vendomart/vendordash/internal/core/domain"
	"github.com/vendomart/vendordash/internal/core/port"
	"github.com/vendomart/vendordash/internal/core/port/mock"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type routerMocks struct {
	auth     *mock.MockAuthService
	triage   *mock.MockTriageService
	progress *mock.MockProgressService
}

func setupRouter(t *testing.T, ctrl *gomock.Controller, token string) (*handler.Router, routerMocks) {
	t.Helper()

	logger, _ := zap.NewProduction()
	mocks := routerMocks{
		auth:     mock.NewMockAuthService(ctrl),
		triage:   mock.NewMockTriageService(ctrl),
		progress: mock.NewMockProgressService(ctrl),
	}

	tokens := tokenstore.NewMemory()
	if token != "" {
		tokens.Set(token)
	}

	authHandler, err := handler.NewAuthHandler(mocks.auth, logger)
	require.NoError(t, err)
	requestHandler, err := handler.NewRequestHandler(mocks.triage, logger)
	require.NoError(t, err)
	orderHandler, err := handler.NewOrderHandler(mocks.progress, logger)
	require.NoError(t, err)

	router, err := handler.NewRouter(&config.HTTP{}, tokens, authHandler, requestHandler, orderHandler)
	require.NoError(t, err)
	return router, mocks
}

func perform(router *handler.Router, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func acceptedProduct(id string) *domain.Order {
	return &domain.Order{
		ID:        id,
		OrderType: domain.OrderTypeProduct,
		Status:    domain.OrderStatusAccepted,
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestAdvanceOrder_DirectTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := setupRouter(t, ctrl, "tok-1")

	order := acceptedProduct("o-1")
	updated := order.Clone()
	updated.Status = domain.OrderStatusStarted

	mocks.progress.EXPECT().Orders(gomock.Any(), false).Return([]*domain.Order{order}, nil)
	mocks.progress.EXPECT().RequestAdvance(gomock.Any(), gomock.Any()).
		Return(&port.AdvanceResult{Order: updated, Target: domain.OrderStatusStarted}, nil)
	mocks.progress.EXPECT().CanAdvance(gomock.Any()).Return(true)

	rec := perform(router, http.MethodPost, "/api/orders/o-1/advance", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "Started", data["status"])
	assert.Equal(t, "Out for Delivery", data["statusLabel"])
}

func TestAdvanceOrder_OTPRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := setupRouter(t, ctrl, "tok-1")

	order := acceptedProduct("o-2")
	order.Status = domain.OrderStatusStarted

	mocks.progress.EXPECT().Orders(gomock.Any(), false).Return([]*domain.Order{order}, nil)
	mocks.progress.EXPECT().RequestAdvance(gomock.Any(), gomock.Any()).
		Return(&port.AdvanceResult{Order: order, Target: domain.OrderStatusCompleted, OTPRequired: true}, nil)

	rec := perform(router, http.MethodPost, "/api/orders/o-2/advance", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, true, data["otpRequired"])
	assert.Equal(t, "Completed", data["target"])
	assert.Equal(t, "Delivered", data["targetLabel"])
}

func TestAdvanceOrder_WithOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := setupRouter(t, ctrl, "tok-1")

	order := acceptedProduct("o-3")
	order.Status = domain.OrderStatusStarted
	updated := order.Clone()
	updated.Status = domain.OrderStatusCompleted

	mocks.progress.EXPECT().Orders(gomock.Any(), false).Return([]*domain.Order{order}, nil)
	mocks.progress.EXPECT().Advance(gomock.Any(), gomock.Any(), "12345").Return(updated, nil)
	mocks.progress.EXPECT().CanAdvance(gomock.Any()).Return(false)

	rec := perform(router, http.MethodPost, "/api/orders/o-3/advance", map[string]string{"otp": "12345"})
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Completed", data["status"])
	assert.Equal(t, "Delivered", data["statusLabel"])
	assert.Equal(t, false, data["canAdvance"])
}

func TestAdvanceOrder_WrongOTPSurfacesBackendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := setupRouter(t, ctrl, "tok-1")

	order := acceptedProduct("o-4")

	mocks.progress.EXPECT().Orders(gomock.Any(), false).Return([]*domain.Order{order}, nil)
	mocks.progress.EXPECT().Advance(gomock.Any(), gomock.Any(), "55555").
		Return(nil, &domain.BackendError{Status: http.StatusBadRequest, Message: "Invalid OTP"})

	rec := perform(router, http.MethodPost, "/api/orders/o-4/advance", map[string]string{"otp": "55555"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid OTP", body["message"])
}

func TestAdvanceOrder_UnknownOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := setupRouter(t, ctrl, "tok-1")

	mocks.progress.EXPECT().Orders(gomock.Any(), false).Return([]*domain.Order{}, nil)

	rec := perform(router, http.MethodPost, "/api/orders/missing/advance", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDecideRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := setupRouter(t, ctrl, "tok-1")

	request := &domain.Order{ID: "req-1", OrderType: domain.OrderTypeProduct, Status: domain.OrderStatusPending}
	updated := request.Clone()
	updated.Status = domain.OrderStatusRejected

	mocks.triage.EXPECT().Requests(gomock.Any(), false).Return([]*domain.Order{request}, nil)
	mocks.triage.EXPECT().Decide(gomock.Any(), gomock.Any(), domain.OrderStatusRejected).Return(updated, nil)

	rec := perform(router, http.MethodPatch, "/api/requests/req-1/decision", map[string]string{"status": "Rejected"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "Rejected", data["status"])
	// Triage actions are disabled once the request is decided.
	assert.Equal(t, false, data["canAdvance"])
}

func TestDecideRequest_AlreadyDecided(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := setupRouter(t, ctrl, "tok-1")

	request := &domain.Order{ID: "req-2", OrderType: domain.OrderTypeProduct, Status: domain.OrderStatusAccepted}

	mocks.triage.EXPECT().Requests(gomock.Any(), false).Return([]*domain.Order{request}, nil)
	mocks.triage.EXPECT().Decide(gomock.Any(), gomock.Any(), domain.OrderStatusRejected).
		Return(nil, domain.ErrRequestDecided)

	rec := perform(router, http.MethodPatch, "/api/requests/req-2/decision", map[string]string{"status": "Rejected"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSessionGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No token in the store: every guarded route refuses before touching
	// a service.
	router, _ := setupRouter(t, ctrl, "")

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/requests"},
		{http.MethodGet, "/api/orders"},
		{http.MethodGet, "/api/profile"},
		{http.MethodPost, "/api/orders/o-1/advance"},
	} {
		rec := perform(router, route.method, route.path, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.path)
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := setupRouter(t, ctrl, "")

	mocks.auth.EXPECT().Login(gomock.Any(), "vendor@acme.test", "secret").Return("tok-9", nil)

	rec := perform(router, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "vendor@acme.test", "password": "secret"})
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "tok-9", data["token"])
}

func TestLogin_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := setupRouter(t, ctrl, "")

	rec := perform(router, http.MethodPost, "/api/auth/login", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
