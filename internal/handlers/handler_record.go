package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/mtrack/internal/core/domain"
	portssvc "github.com/SscSPs/mtrack/internal/core/ports/services"
	"github.com/SscSPs/mtrack/internal/dto"
	"github.com/SscSPs/mtrack/internal/middleware"
	"github.com/SscSPs/mtrack/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// recordHandler handles HTTP requests related to ledger records.
type recordHandler struct {
	recordService portssvc.RecordSvcFacade
}

// RegisterRecordRoutes registers routes related to ledger records.
func RegisterRecordRoutes(rg *gin.RouterGroup, recordService portssvc.RecordSvcFacade) {
	h := &recordHandler{recordService: recordService}

	records := rg.Group("/records/:ledger")
	{
		records.GET("", h.listRecords)
		records.POST("", h.createRecord)
		records.PUT("/:id", h.updateRecord)
		records.DELETE("/:id", h.deleteRecord)
	}
}

// ledgerParam parses the :ledger path segment, writing a 400 when it is unknown.
func ledgerParam(c *gin.Context, logger *slog.Logger) (domain.LedgerType, bool) {
	ledger, err := domain.ParseLedgerType(c.Param("ledger"))
	if err != nil {
		logger.Warn("Unknown ledger in path", slog.String("ledger", c.Param("ledger")))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return ledger, true
}

func recordKey(rec domain.Record) (time.Time, string) {
	return rec.Timestamp, rec.ID
}

func (h *recordHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerParam(c, logger)
	if !ok {
		return
	}

	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListRecords", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	records, err := h.recordService.ListRecords(c.Request.Context(), ledger)
	if err != nil {
		respondError(c, logger, err, "Failed to list records")
		return
	}

	page, next, err := pagination.Page(records, params.Limit, params.NextToken, recordKey)
	if err != nil {
		logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if next != nil {
		c.Header(dto.NextTokenHeader, *next)
	}
	c.JSON(http.StatusOK, dto.ToListRecordResponse(page))
}

func (h *recordHandler) createRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerParam(c, logger)
	if !ok {
		return
	}
	var req dto.CreateRecordRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	rec, err := h.recordService.CreateRecord(c.Request.Context(), ledger, req.ToDraft(ledger))
	if err != nil {
		respondError(c, logger, err, "Failed to create record")
		return
	}
	logger.Info("Record created", slog.String("record_id", rec.ID), slog.String("ledger", string(ledger)))
	c.JSON(http.StatusCreated, dto.ToRecordResponse(rec))
}

func (h *recordHandler) updateRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerParam(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateRecordRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	id := c.Param("id")
	result, err := h.recordService.UpdateRecord(c.Request.Context(), ledger, req.ToUpdate(id))
	if err != nil {
		respondError(c, logger, err, "Failed to update record")
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{ID: id, Result: result})
}

func (h *recordHandler) deleteRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledger, ok := ledgerParam(c, logger)
	if !ok {
		return
	}

	id := c.Param("id")
	result, err := h.recordService.DeleteRecord(c.Request.Context(), ledger, id)
	if err != nil {
		respondError(c, logger, err, "Failed to delete record")
		return
	}
	logger.Info("Record delete handled", slog.String("record_id", id), slog.String("result", string(result)))
	c.Status(http.StatusNoContent)
}
