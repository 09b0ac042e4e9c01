package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vendomart/vendordash/internal/core/domain"
	"github.com/vendomart/vendordash/internal/core/port"
	"go.uber.org/zap"
)

type itemResp struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type serviceResp struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Date          string `json:"date,omitempty"`
	Time          string `json:"time,omitempty"`
	IsHourlyBased bool   `json:"isHourlyBased"`
	UserInput     string `json:"userInput,omitempty"`
}

type orderResp struct {
	ID              string        `json:"id"`
	OrderID         string        `json:"orderId,omitempty"`
	MainOrderID     string        `json:"mainOrderId,omitempty"`
	OrderType       string        `json:"orderType"`
	Status          string        `json:"status"`
	StatusLabel     string        `json:"statusLabel"`
	StatusColor     string        `json:"statusColor"`
	StatusIcon      string        `json:"statusIcon"`
	Items           []itemResp    `json:"items,omitempty"`
	Services        []serviceResp `json:"services,omitempty"`
	Hidden          bool          `json:"hidden"`
	TotalAmount     string        `json:"totalAmount"`
	CompanyName     string        `json:"companyName,omitempty"`
	ContactPerson   string        `json:"contactPerson,omitempty"`
	DeliveryAddress string        `json:"deliveryAddress,omitempty"`
	CanAdvance      bool          `json:"canAdvance"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

func toOrderResp(o *domain.Order, canAdvance bool) orderResp {
	view := domain.StatusViewFor(o.OrderType, o.Status)
	r := orderResp{
		ID:              o.ID,
		OrderID:         o.OrderID,
		MainOrderID:     o.MainOrderID,
		OrderType:       string(o.OrderType),
		Status:          string(o.Status),
		StatusLabel:     view.Label,
		StatusColor:     view.ColorClass,
		StatusIcon:      view.Icon,
		Hidden:          o.Hidden,
		TotalAmount:     o.TotalAmount.String(),
		CompanyName:     o.CompanyName,
		ContactPerson:   o.ContactPerson,
		DeliveryAddress: o.DeliveryAddress,
		CanAdvance:      canAdvance,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	for _, it := range o.Items {
		r.Items = append(r.Items, itemResp{
			ID:       it.ID,
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price.String(),
		})
	}
	for _, sv := range o.Services {
		r.Services = append(r.Services, serviceResp{
			ID:            sv.ID,
			Name:          sv.Name,
			Date:          sv.Date,
			Time:          sv.Time,
			IsHourlyBased: sv.IsHourlyBased,
			UserInput:     sv.UserInput,
		})
	}
	return r
}

type OrderHandler struct {
	Handler
	progress port.ProgressService
}

func NewOrderHandler(progress port.ProgressService, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler:  *NewHandler(logger),
		progress: progress,
	}, nil
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	refresh := ctx.Query("refresh") == "true"

	list, err := oh.progress.Orders(ctx, refresh)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResp, 0, len(list))
	for _, o := range list {
		result = append(result, toOrderResp(o, oh.progress.CanAdvance(o)))
	}
	oh.handleSuccess(ctx, result)
}

type advanceRequest struct {
	OTP string `json:"otp"`
}

type otpRequiredResponse struct {
	OTPRequired bool   `json:"otpRequired"`
	Target      string `json:"target"`
	TargetLabel string `json:"targetLabel"`
}

// AdvanceOrder moves the order to its next status. Without a code in the
// body, an OTP-gated transition is answered with otpRequired instead of
// being applied; the client resubmits with the collected code.
func (oh *OrderHandler) AdvanceOrder(ctx *gin.Context) {
	order, err := oh.findOrder(ctx, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	var req advanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	if req.OTP != "" {
		updated, err := oh.progress.Advance(ctx, order, req.OTP)
		if err != nil {
			oh.handleError(ctx, err)
			return
		}
		oh.handleSuccess(ctx, toOrderResp(updated, oh.progress.CanAdvance(updated)))
		return
	}

	result, err := oh.progress.RequestAdvance(ctx, order)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	if result.OTPRequired {
		oh.handleSuccess(ctx, otpRequiredResponse{
			OTPRequired: true,
			Target:      string(result.Target),
			TargetLabel: domain.LabelFor(order.OrderType, result.Target),
		})
		return
	}
	oh.handleSuccess(ctx, toOrderResp(result.Order, oh.progress.CanAdvance(result.Order)))
}

type statusViewResp struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Color  string `json:"color"`
	Icon   string `json:"icon"`
}

func (oh *OrderHandler) OrderStatus(ctx *gin.Context) {
	order, err := oh.findOrder(ctx, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	view := domain.StatusViewFor(order.OrderType, order.Status)
	oh.handleSuccess(ctx, statusViewResp{
		Status: string(view.Value),
		Label:  view.Label,
		Color:  view.ColorClass,
		Icon:   view.Icon,
	})
}

func (oh *OrderHandler) findOrder(ctx *gin.Context, id string) (*domain.Order, error) {
	list, err := oh.progress.Orders(ctx, false)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, domain.ErrDataNotFound
}
