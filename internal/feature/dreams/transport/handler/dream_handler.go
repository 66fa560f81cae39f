// Package handler provides the HTTP handlers for the dreams feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"dreamjournal/internal/api"
	authusecase "dreamjournal/internal/feature/auth/usecase"
	"dreamjournal/internal/feature/dreams/domain/entity"
	"dreamjournal/internal/feature/dreams/usecase"
	jwtmw "dreamjournal/internal/platform/jwt"
	"dreamjournal/internal/shared/apperr"
)

// DreamsUsecase defines the entry operations consumed by this handler.
type DreamsUsecase interface {
	// Create validates and persists a new entry, returning its ID.
	Create(ctx context.Context, userID uint, in usecase.CreateInput) (string, error)
	// Update re-validates and persists changes to an owned entry.
	Update(ctx context.Context, userID uint, id string, in usecase.UpdateInput) (string, error)
	// Delete removes an owned entry.
	Delete(ctx context.Context, userID uint, id string) (string, error)
	// List returns the user's entries, newest first.
	List(ctx context.Context, userID uint) ([]entity.DreamEntry, error)
}

// DreamHandler handles HTTP requests for dream entries.
type DreamHandler struct {
	dreams DreamsUsecase
}

// NewDreamHandler creates a new DreamHandler instance.
func NewDreamHandler(dreams DreamsUsecase) *DreamHandler {
	return &DreamHandler{dreams: dreams}
}

// Create handles POST /dreams.
func (h *DreamHandler) Create(c *gin.Context) {
	var req api.CreateDreamEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create entry validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	userID := c.GetUint(jwtmw.ContextUserID)
	id, err := h.dreams.Create(c.Request.Context(), userID, usecase.CreateInput{
		Description:          req.Description,
		Mood:                 req.Mood,
		SleepQuality:         req.SleepQuality,
		PriorNightActivities: req.PriorNightActivities,
		DreamDate:            req.DreamDate,
		DreamTime:            req.DreamTime,
		DreamTimeTimezone:    req.DreamTimeTimezone,
	})
	if err != nil {
		h.respondError(c, err, "create")
		return
	}
	slog.Info("dream entry created", "entry_id", id, "user_id", userID)
	c.JSON(http.StatusCreated, api.EntryIDResponse{Id: id})
}

// Update handles PUT /dreams/:id.
func (h *DreamHandler) Update(c *gin.Context) {
	var req api.UpdateDreamEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update entry validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	userID := c.GetUint(jwtmw.ContextUserID)
	id, err := h.dreams.Update(c.Request.Context(), userID, c.Param("id"), usecase.UpdateInput{
		Description:          req.Description,
		Mood:                 req.Mood,
		SleepQuality:         req.SleepQuality,
		PriorNightActivities: req.PriorNightActivities,
		DreamDate:            req.DreamDate,
		DreamTime:            req.DreamTime,
		DreamTimeTimezone:    req.DreamTimeTimezone,
	})
	if err != nil {
		h.respondError(c, err, "update")
		return
	}
	c.JSON(http.StatusOK, api.EntryIDResponse{Id: id})
}

// Delete handles DELETE /dreams/:id.
func (h *DreamHandler) Delete(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	id, err := h.dreams.Delete(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "delete")
		return
	}
	slog.Info("dream entry deleted", "entry_id", id, "user_id", userID)
	c.JSON(http.StatusOK, api.EntryIDResponse{Id: id})
}

// List handles GET /dreams. Anonymous callers receive an empty list rather
// than 401; the route is mounted behind the optional-auth middleware.
func (h *DreamHandler) List(c *gin.Context) {
	v, ok := c.Get(jwtmw.ContextUserID)
	if !ok {
		c.JSON(http.StatusOK, []api.DreamEntryResponse{})
		return
	}
	userID, _ := v.(uint)

	entries, err := h.dreams.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("entry list failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	out := make([]api.DreamEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, api.DreamEntryResponse{
			Id:                   e.ID,
			UserId:               e.UserID,
			Description:          e.Description,
			Mood:                 e.Mood,
			SleepQuality:         e.SleepQuality,
			PriorNightActivities: e.PriorNightActivities,
			DreamDate:            e.DreamDate,
			DreamTime:            e.DreamTime,
			DreamTimeTimezone:    e.DreamTimeTimezone,
			DreamDateTime:        e.DreamDateTime,
			CreatedAt:            e.CreatedAt.UnixMilli(),
		})
	}
	c.JSON(http.StatusOK, out)
}

// respondError maps usecase failures to HTTP statuses: validation and offset
// errors to 400, unverified callers to 401, missing or foreign entries to
// 404, anything else to 500.
func (h *DreamHandler) respondError(c *gin.Context, err error, op string) {
	var (
		ve *apperr.ValidationError
		oe *usecase.OffsetError
	)
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: ve.Message})
	case errors.As(err, &oe):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: oe.Error()})
	case errors.Is(err, authusecase.ErrEmailNotVerified):
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "email verification required"})
	case errors.Is(err, authusecase.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
	case errors.Is(err, usecase.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Dream entry not found"})
	default:
		slog.Error("dream entry operation failed", "op", op, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}
