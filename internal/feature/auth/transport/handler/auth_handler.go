// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"dreamjournal/internal/api"
	"dreamjournal/internal/feature/auth/domain/entity"
	"dreamjournal/internal/feature/auth/usecase"
	jwtmw "dreamjournal/internal/platform/jwt"
)

// AuthUsecase defines the authentication operations consumed by this handler.
type AuthUsecase interface {
	// Signup registers a new password account.
	Signup(ctx context.Context, email, password string) error
	// Login authenticates a user and returns a JWT on success.
	Login(ctx context.Context, email, password string) (string, error)
	// CurrentUser resolves the caller's account record.
	CurrentUser(ctx context.Context, userID uint) (*entity.User, error)
}

// LinkUsecase defines the account-linking operations consumed by this handler.
type LinkUsecase interface {
	// LinkAccounts absorbs other verified accounts sharing the caller's email.
	LinkAccounts(ctx context.Context, userID uint) (*usecase.LinkResult, error)
	// CheckLinkable counts other accounts sharing the caller's email.
	CheckLinkable(ctx context.Context, userID uint) (*usecase.LinkableAccounts, error)
}

// AuthHandler handles HTTP requests for authentication and account linking.
type AuthHandler struct {
	auth  AuthUsecase
	links LinkUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase, links LinkUsecase) *AuthHandler {
	return &AuthHandler{auth: auth, links: links}
}

// Signup handles the user registration endpoint.
// Usecase errors collapse to a generic 409 so responses do not reveal which
// addresses are registered.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req api.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.Signup(c.Request.Context(), string(req.Email), req.Password); err != nil {
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "signup failed"})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.MessageResponse{Message: "ok"})
}

// Login handles the user login endpoint.
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), string(req.Email), req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid email or password"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// Me returns the caller's account including the verified flag.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
			return
		}
		slog.Error("current user lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, api.UserResponse{
		Id:       user.ID,
		Email:    user.Email,
		Provider: user.Provider,
		Verified: user.Verified(),
	})
}

// LinkAccounts absorbs other verified accounts with the caller's email.
func (h *AuthHandler) LinkAccounts(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	result, err := h.links.LinkAccounts(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
		case errors.Is(err, usecase.ErrNoEmail):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "account has no email address"})
		case errors.Is(err, usecase.ErrEmailNotVerified):
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "email verification required"})
		default:
			slog.Error("account linking failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		}
		return
	}
	slog.Info("account linking attempted", "user_id", userID, "linked", result.Linked,
		"transferred_entries", result.TransferredEntries)
	c.JSON(http.StatusOK, api.LinkAccountsResponse{
		Linked:             result.Linked,
		Message:            result.Message,
		TransferredEntries: result.TransferredEntries,
	})
}

// LinkableAccounts reports how many accounts share the caller's email.
func (h *AuthHandler) LinkableAccounts(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	result, err := h.links.CheckLinkable(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
			return
		}
		slog.Error("linkable account lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, api.LinkableAccountsResponse{
		CurrentUserVerified: result.CurrentUserVerified,
		LinkableAccounts:    result.LinkableAccounts,
		UnverifiedAccounts:  result.UnverifiedAccounts,
		CanLink:             result.CanLink,
	})
}
