package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderType string

const (
	OrderTypeProduct OrderType = "product"
	OrderTypeService OrderType = "service"
)

type OrderItem struct {
	ID       string
	Name     string
	Quantity int
	Price    decimal.Decimal
}

type ServiceLine struct {
	ID            string
	Name          string
	Date          string
	Time          string
	IsHourlyBased bool
	UserInput     string
}

// Order is a single vendor-facing order line fanned out from a customer's
// main order. The same entity is observed in two phases: as an order request
// (Pending/Accepted/Rejected) and, once accepted, as an order in progress
// (Accepted/Started/Completed).
type Order struct {
	ID              string
	OrderID         string
	MainOrderID     string
	VendorID        string
	OrderType       OrderType
	Status          OrderStatus
	Items           []OrderItem
	Services        []ServiceLine
	Hidden          bool
	TotalAmount     decimal.Decimal
	CompanyName     string
	ContactPerson   string
	DeliveryAddress string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HourlyBased reports whether the order's first service line is hourly.
// Only the first line is consulted, matching the backend's OTP contract.
func (o *Order) HourlyBased() bool {
	if len(o.Services) == 0 {
		return false
	}
	return o.Services[0].IsHourlyBased
}

// PrimaryServiceID returns the identifier the progress endpoint expects for
// service orders, empty otherwise.
func (o *Order) PrimaryServiceID() string {
	if o.OrderType != OrderTypeService || len(o.Services) == 0 {
		return ""
	}
	return o.Services[0].ID
}

// Clone returns a deep copy, so callers can stage a transition without
// touching the cached record.
func (o *Order) Clone() *Order {
	c := *o
	if o.Items != nil {
		c.Items = make([]OrderItem, len(o.Items))
		copy(c.Items, o.Items)
	}
	if o.Services != nil {
		c.Services = make([]ServiceLine, len(o.Services))
		copy(c.Services, o.Services)
	}
	return &c
}
