package handler

import (
	"log/slog"
	"net/http"
	"time"

	"diary/internal/delivery/http/middleware"
	"diary/internal/delivery/http/response"
	"diary/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// EntitlementHandlerParams holds dependencies for EntitlementHandler, injected by Fx.
type EntitlementHandlerParams struct {
	fx.In

	EntitlementUC usecase.EntitlementUsecase
	Logger        *slog.Logger
}

// EntitlementHandler exposes the paywall verdict and receipt reporting.
type EntitlementHandler struct {
	entitlementUC usecase.EntitlementUsecase
	logger        *slog.Logger
}

// NewEntitlementHandler is the constructor for EntitlementHandler.
func NewEntitlementHandler(params EntitlementHandlerParams) *EntitlementHandler {
	return &EntitlementHandler{
		entitlementUC: params.EntitlementUC,
		logger:        params.Logger,
	}
}

// ReportReceiptRequest represents a purchase reported by the store client.
type ReportReceiptRequest struct {
	ProductID     string    `json:"product_id" validate:"required"`
	TransactionID string    `json:"transaction_id" validate:"required"`
	Platform      string    `json:"platform" validate:"required,oneof=ios android"`
	Payload       string    `json:"payload" validate:"required"`
	PurchasedAt   time.Time `json:"purchased_at" validate:"required"`
}

// VerdictResponse carries the resolved entitlement verdict.
type VerdictResponse struct {
	Verdict string `json:"verdict"`
}

// Resolve returns the caller's entitlement verdict. Resolution never fails:
// degraded backends collapse into one of the three verdicts.
func (h *EntitlementHandler) Resolve(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	verdict := h.entitlementUC.Resolve(c.Request().Context(), userID)

	return response.Success(c, http.StatusOK, VerdictResponse{Verdict: string(verdict)}, "Entitlement resolved successfully")
}

// ReportReceipt records a store receipt and returns the resulting verdict.
func (h *EntitlementHandler) ReportReceipt(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ReportReceiptRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid receipt input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	verdict, err := h.entitlementUC.RegisterPurchase(c.Request().Context(), userID, &usecase.ReportReceiptInput{
		ProductID:     req.ProductID,
		TransactionID: req.TransactionID,
		Platform:      req.Platform,
		Payload:       req.Payload,
		PurchasedAt:   req.PurchasedAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, VerdictResponse{Verdict: string(verdict)}, "Receipt recorded successfully")
}
