package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/vendomart/vendordash/internal/adapter/config"
	"github.com/vendomart/vendordash/internal/core/domain"
	"github.com/vendomart/vendordash/internal/core/port"
	"go.uber.org/zap"
)

// noRecordsMessage is what the backend puts in a 404 body when the vendor
// simply has no records yet. That response is an empty list, not an error.
const noRecordsMessage = "No order request found!"

type Client struct {
	baseURL string
	client  *http.Client
	tokens  port.TokenStore
	logger  *zap.Logger
}

func NewClient(cfg *config.Platform, tokens port.TokenStore, log *zap.Logger) (*Client, error) {
	return &Client{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
		tokens:  tokens,
		logger:  log,
	}, nil
}

type envelope struct {
	Success      bool           `json:"success"`
	Message      string         `json:"message"`
	Token        string         `json:"token"`
	OrderRequest []orderPayload `json:"orderRequest"`
	VendorOrders []orderPayload `json:"vendorOrders"`
	Vendor       *vendorPayload `json:"vendor"`
}

func (c *Client) LoginVendor(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	env, status, err := c.do(ctx, http.MethodPost, "/auth/login/vendor", body, false)
	if err != nil {
		return "", err
	}
	if status >= http.StatusBadRequest || !env.Success {
		return "", &domain.BackendError{Status: status, Message: env.Message}
	}
	return env.Token, nil
}

func (c *Client) ListOrderRequests(ctx context.Context) ([]*domain.Order, error) {
	env, status, err := c.do(ctx, http.MethodGet, "/vendor/orders/request", nil, true)
	if err != nil {
		return nil, err
	}
	if emptyList(status, env) {
		return []*domain.Order{}, nil
	}
	if err := checkStatus(status, env); err != nil {
		return nil, err
	}
	return toOrders(env.OrderRequest), nil
}

func (c *Client) ListVendorOrders(ctx context.Context) ([]*domain.Order, error) {
	env, status, err := c.do(ctx, http.MethodGet, "/vendor/orders", nil, true)
	if err != nil {
		return nil, err
	}
	if emptyList(status, env) {
		return []*domain.Order{}, nil
	}
	if err := checkStatus(status, env); err != nil {
		return nil, err
	}
	// Some backend revisions answer with orderRequest, others with
	// vendorOrders.
	payload := env.OrderRequest
	if len(payload) == 0 {
		payload = env.VendorOrders
	}
	return toOrders(payload), nil
}

func (c *Client) DecideRequest(ctx context.Context, requestID string, status domain.OrderStatus) error {
	body := map[string]string{"status": string(status)}
	path := fmt.Sprintf("/vendor/orders/request/%s/status", requestID)
	env, code, err := c.do(ctx, http.MethodPatch, path, body, true)
	if err != nil {
		return err
	}
	return checkStatus(code, env)
}

type advanceBody struct {
	Status    string `json:"status"`
	OTP       string `json:"otp"`
	ServiceID string `json:"serviceId,omitempty"`
}

func (c *Client) AdvanceOrder(ctx context.Context, orderID string, status domain.OrderStatus, otp, serviceID string) error {
	body := advanceBody{Status: string(status), OTP: otp, ServiceID: serviceID}
	path := fmt.Sprintf("/vendor/orders/%s/progress", orderID)
	env, code, err := c.do(ctx, http.MethodPatch, path, body, true)
	if err != nil {
		return err
	}
	return checkStatus(code, env)
}

func (c *Client) VendorProfile(ctx context.Context) (*domain.VendorProfile, error) {
	env, status, err := c.do(ctx, http.MethodGet, "/vendor/profile", nil, true)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(status, env); err != nil {
		return nil, err
	}
	if env.Vendor == nil {
		return nil, domain.ErrDataNotFound
	}
	return env.Vendor.toDomain(), nil
}

// do sends one request and decodes the standard response envelope. With auth
// set, a missing session token fails before any network I/O.
func (c *Client) do(ctx context.Context, method, path string, body any, auth bool) (*envelope, int, error) {
	var token string
	if auth {
		var err error
		token, err = c.tokens.Token()
		if err != nil {
			return nil, 0, err
		}
	}

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if auth {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("platform request",
		zap.String("method", method),
		zap.String("path", path))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s %s: %v", domain.ErrTransient, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, resp.StatusCode, domain.ErrUnauthorized
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, resp.StatusCode, &domain.BackendError{Status: resp.StatusCode}
		}
		return nil, resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}

	c.logger.Debug("platform response",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Bool("success", env.Success))

	return &env, resp.StatusCode, nil
}

func emptyList(status int, env *envelope) bool {
	return status == http.StatusNotFound &&
		(env.Message == noRecordsMessage || !env.Success)
}

func checkStatus(status int, env *envelope) error {
	if status >= http.StatusBadRequest || !env.Success {
		return &domain.BackendError{Status: status, Message: env.Message}
	}
	return nil
}

// decimalFromFloat converts backend money amounts; NaN and infinities from a
// broken payload are reported, not stored.
func decimalFromFloat(f float64) (decimal.Decimal, error) {
	return decimal.NewFromFloat64(f)
}

type itemPayload struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type servicePayload struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	IsHourlyBased bool   `json:"isHourlyBased"`
	UserInput     any    `json:"userInput"`
}

type orderPayload struct {
	ID              string           `json:"_id"`
	OrderID         string           `json:"orderId"`
	MainOrderID     string           `json:"mainOrderId"`
	VendorID        string           `json:"vendorId"`
	OrderType       string           `json:"orderType"`
	Status          string           `json:"status"`
	Items           []itemPayload    `json:"items"`
	Services        []servicePayload `json:"services"`
	Hidden          bool             `json:"hidden"`
	TotalAmount     float64          `json:"totalAmount"`
	CompanyName     string           `json:"companyName"`
	ContactPerson   string           `json:"contactPerson"`
	DeliveryAddress string           `json:"deliveryAddress"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func (p orderPayload) toDomain() *domain.Order {
	o := &domain.Order{
		ID:              p.ID,
		OrderID:         p.OrderID,
		MainOrderID:     p.MainOrderID,
		VendorID:        p.VendorID,
		OrderType:       domain.OrderType(p.OrderType),
		Status:          domain.OrderStatus(p.Status),
		Hidden:          p.Hidden,
		CompanyName:     p.CompanyName,
		ContactPerson:   p.ContactPerson,
		DeliveryAddress: p.DeliveryAddress,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if total, err := decimalFromFloat(p.TotalAmount); err == nil {
		o.TotalAmount = total
	}
	for _, it := range p.Items {
		item := domain.OrderItem{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
		}
		if price, err := decimalFromFloat(it.Price); err == nil {
			item.Price = price
		}
		o.Items = append(o.Items, item)
	}
	for _, sv := range p.Services {
		line := domain.ServiceLine{
			ID:            sv.ID,
			Name:          sv.Name,
			Date:          sv.Date,
			Time:          sv.Time,
			IsHourlyBased: sv.IsHourlyBased,
		}
		if sv.UserInput != nil {
			line.UserInput = fmt.Sprint(sv.UserInput)
		}
		o.Services = append(o.Services, line)
	}
	return o
}

func toOrders(payload []orderPayload) []*domain.Order {
	orders := make([]*domain.Order, 0, len(payload))
	for _, p := range payload {
		orders = append(orders, p.toDomain())
	}
	return orders
}

type vendorContact struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Contact     string `json:"contact"`
	Email       string `json:"email"`
}

type vendorPayload struct {
	ID               string        `json:"_id"`
	LegalName        string        `json:"legalName"`
	GSTIN            string        `json:"gstin"`
	Category         string        `json:"category"`
	EmployeeCount    int           `json:"employeeCount"`
	LastYearTurnover string        `json:"lastYearTurnover"`
	Experience       string        `json:"experience"`
	BillingAddress   string        `json:"billingAddress"`
	WarehouseAddress string        `json:"warehouseAddress"`
	ContactPerson    vendorContact `json:"contactPerson"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

func (p *vendorPayload) toDomain() *domain.VendorProfile {
	return &domain.VendorProfile{
		ID:               p.ID,
		LegalName:        p.LegalName,
		GSTIN:            p.GSTIN,
		Category:         p.Category,
		EmployeeCount:    p.EmployeeCount,
		LastYearTurnover: p.LastYearTurnover,
		Experience:       p.Experience,
		BillingAddress:   p.BillingAddress,
		WarehouseAddress: p.WarehouseAddress,
		ContactName:      p.ContactPerson.Name,
		ContactEmail:     p.ContactPerson.Email,
		ContactPhone:     p.ContactPerson.Contact,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
