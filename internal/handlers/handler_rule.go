package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/mtrack/internal/core/ports/services"
	"github.com/SscSPs/mtrack/internal/dto"
	"github.com/SscSPs/mtrack/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ruleHandler handles HTTP requests related to automation rules.
type ruleHandler struct {
	ruleService       portssvc.RuleSvcFacade
	automationService portssvc.AutomationSvc
}

// RegisterAutomationRoutes registers rule CRUD and the manual automation trigger.
func RegisterAutomationRoutes(rg *gin.RouterGroup, ruleService portssvc.RuleSvcFacade, automationService portssvc.AutomationSvc) {
	h := &ruleHandler{ruleService: ruleService, automationService: automationService}

	automation := rg.Group("/automation")
	{
		automation.POST("/run", h.runAutomation)

		rules := automation.Group("/rules")
		rules.GET("", h.listRules)
		rules.POST("", h.createRule)
		rules.GET("/:id", h.getRule)
		rules.PUT("/:id", h.updateRule)
		rules.DELETE("/:id", h.deleteRule)
	}
}

func (h *ruleHandler) listRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rules, err := h.ruleService.ListRules(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list automation rules")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRuleResponse(rules))
}

func (h *ruleHandler) getRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rule, err := h.ruleService.GetRule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to get automation rule")
		return
	}
	c.JSON(http.StatusOK, dto.ToRuleResponse(rule))
}

func (h *ruleHandler) createRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRuleRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	rule, err := h.ruleService.CreateRule(c.Request.Context(), req.ToDraft())
	if err != nil {
		respondError(c, logger, err, "Failed to create automation rule")
		return
	}
	logger.Info("Automation rule created", slog.String("rule_id", rule.ID))
	c.JSON(http.StatusCreated, dto.ToRuleResponse(rule))
}

func (h *ruleHandler) updateRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateRuleRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	rule, err := h.ruleService.UpdateRule(c.Request.Context(), req.ToRule(c.Param("id")))
	if err != nil {
		respondError(c, logger, err, "Failed to update automation rule")
		return
	}
	c.JSON(http.StatusOK, dto.ToRuleResponse(rule))
}

func (h *ruleHandler) deleteRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, err := h.ruleService.DeleteRule(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete automation rule")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ruleHandler) runAutomation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	report, err := h.automationService.RunAutomation(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to run automation")
		return
	}
	c.JSON(http.StatusOK, dto.ToAutomationRunResponse(report))
}
