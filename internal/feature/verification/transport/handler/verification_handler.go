// Package handler exposes the email verification endpoints.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"dreamjournal/internal/api"
	"dreamjournal/internal/feature/verification/usecase"
	"dreamjournal/internal/shared/apperr"
)

// VerificationUsecase is the behavior this handler needs from the
// verification usecase.
type VerificationUsecase interface {
	IssueCode(ctx context.Context, email string) error
	RedeemCode(ctx context.Context, email, code string) (*usecase.RedeemResult, error)
	IsVerified(ctx context.Context, email string) (bool, error)
}

// VerificationHandler handles verification code issuance and redemption.
type VerificationHandler struct {
	verification VerificationUsecase
}

// NewVerificationHandler creates a new VerificationHandler.
func NewVerificationHandler(verification VerificationUsecase) *VerificationHandler {
	return &VerificationHandler{verification: verification}
}

// Send issues a fresh verification code and mails it to the address.
// POST /verification/send
func (h *VerificationHandler) Send(c *gin.Context) {
	var req api.SendVerificationEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.verification.IssueCode(c.Request.Context(), req.Email); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.SendVerificationEmailResponse{Success: true})
}

// Verify redeems a verification code for the address.
// POST /verification/verify
func (h *VerificationHandler) Verify(c *gin.Context) {
	var req api.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	result, err := h.verification.RedeemCode(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.VerifyEmailResponse{
		Success:         true,
		AlreadyVerified: result.AlreadyVerified,
	})
}

// Status reports whether the address has been verified.
// GET /verification/status?email=...
func (h *VerificationHandler) Status(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email is required"})
		return
	}

	verified, err := h.verification.IsVerified(c.Request.Context(), email)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.VerificationStatusResponse{Verified: verified})
}

func (h *VerificationHandler) respondError(c *gin.Context, err error) {
	var vErr *apperr.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: vErr.Message})
	case errors.Is(err, usecase.ErrCodeNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Invalid verification code"})
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
	case errors.Is(err, usecase.ErrMailDelivery):
		slog.Error("verification mail delivery failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to send verification email"})
	default:
		slog.Error("verification request failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}
