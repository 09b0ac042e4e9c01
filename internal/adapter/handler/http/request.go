package http

import (
	"github.com/gin-gonic/gin"
	"github.com/vendomart/vendordash/internal/core/domain"
	"github.com/vendomart/vendordash/internal/core/port"
	"go.uber.org/zap"
)

type RequestHandler struct {
	Handler
	triage port.TriageService
}

func NewRequestHandler(triage port.TriageService, logger *zap.Logger) (*RequestHandler, error) {
	return &RequestHandler{
		Handler: *NewHandler(logger),
		triage:  triage,
	}, nil
}

func (rh *RequestHandler) ListRequests(ctx *gin.Context) {
	refresh := ctx.Query("refresh") == "true"

	list, err := rh.triage.Requests(ctx, refresh)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	result := make([]orderResp, 0, len(list))
	for _, r := range list {
		// Triage actions stay enabled only while the request is pending.
		result = append(result, toOrderResp(r, r.Status == domain.OrderStatusPending))
	}
	rh.handleSuccess(ctx, result)
}

type decisionRequest struct {
	Status string `json:"status" binding:"required"`
}

func (rh *RequestHandler) DecideRequest(ctx *gin.Context) {
	var req decisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		rh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	request, err := rh.findRequest(ctx, ctx.Param("id"))
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	updated, err := rh.triage.Decide(ctx, request, domain.OrderStatus(req.Status))
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccessMessage(ctx, "order request "+req.Status, toOrderResp(updated, false))
}

func (rh *RequestHandler) findRequest(ctx *gin.Context, id string) (*domain.Order, error) {
	list, err := rh.triage.Requests(ctx, false)
	if err != nil {
		return nil, err
	}
	for _, r := range list {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domain.ErrDataNotFound
}
