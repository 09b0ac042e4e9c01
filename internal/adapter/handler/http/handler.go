package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendomart/vendordash/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:   http.StatusInternalServerError,
	domain.ErrBadRequest: http.StatusBadRequest,

	domain.ErrInvalidOTP:      http.StatusBadRequest,
	domain.ErrInvalidDecision: http.StatusBadRequest,
	domain.ErrOTPNotRequired:  http.StatusBadRequest,

	domain.ErrRequestDecided:       http.StatusConflict,
	domain.ErrOrderCompleted:       http.StatusConflict,
	domain.ErrNotAdvanceable:       http.StatusConflict,
	domain.ErrTransitionInFlight:   http.StatusConflict,
	domain.ErrOtpSubmissionPending: http.StatusConflict,
	domain.ErrChallengeClosed:      http.StatusConflict,

	domain.ErrNoToken:      http.StatusUnauthorized,
	domain.ErrUnauthorized: http.StatusUnauthorized,

	domain.ErrDataNotFound: http.StatusNotFound,
	domain.ErrTransient:    http.StatusBadGateway,
}

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for a malformed request body
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, response{Success: false, Message: err.Error()})
}

// handleError maps a domain error to a status code. Errors the map does not
// know are logged and hidden behind a 500.
func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode := 0

	var backendErr *domain.BackendError
	if errors.As(err, &backendErr) {
		// Pass the platform's own rejection through; anything that is
		// not a client fault becomes a bad gateway.
		statusCode = http.StatusBadGateway
		if backendErr.Status >= http.StatusBadRequest && backendErr.Status < http.StatusInternalServerError {
			statusCode = backendErr.Status
		}
	} else {
		for target, code := range errorStatusMap {
			if errors.Is(err, target) {
				statusCode = code
				break
			}
		}
	}

	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
	}

	ctx.JSON(statusCode, response{Success: false, Message: err.Error()})
}

// handleAbort ends the request from middleware with the mapped status.
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("aborting request", zap.Error(err))
	}
	ctx.AbortWithStatusJSON(statusCode, response{Success: false, Message: err.Error()})
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, response{Success: true, Data: data})
}

func (h *Handler) handleSuccessMessage(ctx *gin.Context, message string, data any) {
	ctx.JSON(http.StatusOK, response{Success: true, Message: message, Data: data})
}
