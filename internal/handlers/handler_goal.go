package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/mtrack/internal/core/ports/services"
	"github.com/SscSPs/mtrack/internal/dto"
	"github.com/SscSPs/mtrack/internal/middleware"
	"github.com/gin-gonic/gin"
)

// goalHandler handles HTTP requests related to savings goals.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

// RegisterGoalRoutes registers routes related to savings goals.
func RegisterGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := &goalHandler{goalService: goalService}

	goals := rg.Group("/goals")
	{
		goals.GET("", h.listGoals)
		goals.POST("", h.createGoal)
		goals.GET("/summary", h.getFundsSummary)
		goals.GET("/:id", h.getGoal)
		goals.PUT("/:id", h.updateGoal)
		goals.DELETE("/:id", h.deleteGoal)
		goals.POST("/:id/allocate", h.allocateFunds)
		goals.POST("/:id/complete", h.completeGoal)
	}
}

func (h *goalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goals, err := h.goalService.ListGoals(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list goals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListGoalResponse(goals))
}

func (h *goalHandler) getGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goal, err := h.goalService.GetGoal(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to get goal")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

func (h *goalHandler) getFundsSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	summary, err := h.goalService.GetFundsSummary(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to compute funds summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToFundsSummaryResponse(summary))
}

func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGoalRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), req.ToDraft())
	if err != nil {
		respondError(c, logger, err, "Failed to create goal")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

func (h *goalHandler) updateGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateGoalRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), c.Param("id"), req.ToUpdate())
	if err != nil {
		respondError(c, logger, err, "Failed to update goal")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

func (h *goalHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, err := h.goalService.DeleteGoal(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete goal")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *goalHandler) allocateFunds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AllocateFundsRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	goal, err := h.goalService.AllocateFunds(c.Request.Context(), c.Param("id"), req.Amount)
	if err != nil {
		respondError(c, logger, err, "Failed to allocate funds")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

func (h *goalHandler) completeGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goal, rec, err := h.goalService.CompleteGoalPurchase(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to complete goal")
		return
	}
	logger.Info("Goal purchase completed", slog.String("goal_id", goal.ID), slog.String("record_id", rec.ID))
	c.JSON(http.StatusOK, dto.CompleteGoalResponse{
		Goal:    dto.ToGoalResponse(goal),
		Expense: dto.ToRecordResponse(rec),
	})
}
