package http

import (
	"github.com/gin-gonic/gin"
	"github.com/vendomart/vendordash/internal/core/domain"
	"github.com/vendomart/vendordash/internal/core/port"
	"go.uber.org/zap"
)

type AuthHandler struct {
	Handler
	auth port.AuthService
}

func NewAuthHandler(auth port.AuthService, logger *zap.Logger) (*AuthHandler, error) {
	return &AuthHandler{
		Handler: *NewHandler(logger),
		auth:    auth,
	}, nil
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (ah *AuthHandler) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ah.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	token, err := ah.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccessMessage(ctx, "vendor logged in", loginResponse{Token: token})
}

func (ah *AuthHandler) Logout(ctx *gin.Context) {
	ah.auth.Logout()
	ah.handleSuccessMessage(ctx, "vendor logged out", nil)
}

type profileResponse struct {
	ID               string `json:"id"`
	LegalName        string `json:"legalName"`
	GSTIN            string `json:"gstin"`
	Category         string `json:"category"`
	EmployeeCount    int    `json:"employeeCount"`
	LastYearTurnover string `json:"lastYearTurnover"`
	Experience       string `json:"experience"`
	BillingAddress   string `json:"billingAddress"`
	WarehouseAddress string `json:"warehouseAddress"`
	ContactName      string `json:"contactName"`
	ContactEmail     string `json:"contactEmail"`
	ContactPhone     string `json:"contactPhone"`
}

func (ah *AuthHandler) Profile(ctx *gin.Context) {
	profile, err := ah.auth.Profile(ctx)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccess(ctx, profileResponse{
		ID:               profile.ID,
		LegalName:        profile.LegalName,
		GSTIN:            profile.GSTIN,
		Category:         profile.Category,
		EmployeeCount:    profile.EmployeeCount,
		LastYearTurnover: profile.LastYearTurnover,
		Experience:       profile.Experience,
		BillingAddress:   profile.BillingAddress,
		WarehouseAddress: profile.WarehouseAddress,
		ContactName:      profile.ContactName,
		ContactEmail:     profile.ContactEmail,
		ContactPhone:     profile.ContactPhone,
	})
}
