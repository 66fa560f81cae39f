// Package handler exposes the dream interpretation endpoint.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"dreamjournal/internal/api"
	dreamsusecase "dreamjournal/internal/feature/dreams/usecase"
	"dreamjournal/internal/feature/insights/usecase"
	jwtmw "dreamjournal/internal/platform/jwt"
)

// InsightsUsecase is the behavior this handler needs from the insights
// usecase.
type InsightsUsecase interface {
	Interpret(ctx context.Context, userID uint, entryID string) (*usecase.Interpretation, error)
}

// InsightsHandler handles dream interpretation requests.
type InsightsHandler struct {
	insights InsightsUsecase
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(insights InsightsUsecase) *InsightsHandler {
	return &InsightsHandler{insights: insights}
}

// Interpret handles POST /dreams/:id/interpretation.
func (h *InsightsHandler) Interpret(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	result, err := h.insights.Interpret(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, dreamsusecase.ErrEntryNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Dream entry not found"})
		case errors.Is(err, usecase.ErrInterpreterUnavailable):
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "dream interpretation is not available"})
		default:
			slog.Error("dream interpretation failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, api.InterpretationResponse{
		EntryId: result.EntryID,
		Summary: result.Summary,
	})
}
