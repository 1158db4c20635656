package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/mtrack/internal/core/ports/services"
	"github.com/SscSPs/mtrack/internal/dto"
	"github.com/SscSPs/mtrack/internal/middleware"
	"github.com/gin-gonic/gin"
)

type settingsHandler struct {
	settingsService portssvc.SettingsSvc
	dataService     portssvc.DataSvc
}

// RegisterSettingsRoutes registers preferences and the export/import commands.
func RegisterSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvc, dataService portssvc.DataSvc) {
	h := &settingsHandler{settingsService: settingsService, dataService: dataService}

	rg.GET("/settings", h.getSettings)
	rg.PUT("/settings", h.updateSettings)

	data := rg.Group("/data")
	{
		data.POST("/export", h.exportData)
		data.POST("/import", h.importData)
	}
}

func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSettingsRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), req.ToUpdate())
	if err != nil {
		respondError(c, logger, err, "Failed to save settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *settingsHandler) exportData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DataTransferRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	files, err := h.dataService.Export(c.Request.Context(), req.Path)
	if err != nil {
		respondError(c, logger, err, "Failed to export data")
		return
	}
	logger.Info("Data exported", slog.String("dest", req.Path), slog.Int("files", len(files)))
	c.JSON(http.StatusOK, dto.DataTransferResponse{Files: files})
}

func (h *settingsHandler) importData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DataTransferRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	files, err := h.dataService.Import(c.Request.Context(), req.Path)
	if err != nil {
		respondError(c, logger, err, "Failed to import data")
		return
	}
	c.JSON(http.StatusOK, dto.DataTransferResponse{Files: files})
}
