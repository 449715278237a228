package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/ledgerhouse/general_ledger_app/internal/core/ports/services"
	"github.com/ledgerhouse/general_ledger_app/internal/dto"
	"github.com/ledgerhouse/general_ledger_app/internal/middleware"
)

// fiscalHandler handles HTTP requests for the fiscal calendar.
type fiscalHandler struct {
	fiscalService portssvc.FiscalSvcFacade
}

// registerFiscalRoutes registers fiscal calendar routes, nested under an
// organization.
func registerFiscalRoutes(rg *gin.RouterGroup, fiscalService portssvc.FiscalSvcFacade) {
	h := &fiscalHandler{fiscalService: fiscalService}

	years := rg.Group("/fiscal-years")
	{
		years.POST("", h.generateFiscalYear)
		years.GET("", h.listFiscalYears)
	}

	periods := rg.Group("/fiscal-periods")
	{
		periods.GET("/:periodID", h.getPeriod)
		periods.POST("/:periodID/close", h.closePeriod)
		periods.POST("/:periodID/reopen", h.reopenPeriod)
	}
}

// generateFiscalYear creates a fiscal year with twelve monthly periods.
func (h *fiscalHandler) generateFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var req dto.GenerateFiscalYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GenerateFiscalYear", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	year, err := h.fiscalService.GenerateFiscalYear(c.Request.Context(), orgID, req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate fiscal year")
		return
	}

	logger.Info("Fiscal year generated successfully", slog.String("fiscal_year_id", year.FiscalYearID))
	c.JSON(http.StatusCreated, dto.ToFiscalYearResponse(year))
}

// listFiscalYears retrieves the organization's fiscal years with periods.
func (h *fiscalHandler) listFiscalYears(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	years, err := h.fiscalService.ListFiscalYears(c.Request.Context(), orgID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list fiscal years")
		return
	}

	resp := make([]dto.FiscalYearResponse, len(years))
	for i := range years {
		resp[i] = dto.ToFiscalYearResponse(&years[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getPeriod retrieves one fiscal period.
func (h *fiscalHandler) getPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	periodID := c.Param("periodID")

	period, err := h.fiscalService.GetPeriodByID(c.Request.Context(), orgID, periodID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve period")
		return
	}

	c.JSON(http.StatusOK, dto.ToFiscalPeriodResponse(period))
}

// closePeriod stops new entries from being dated into the period.
func (h *fiscalHandler) closePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	periodID := c.Param("periodID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.fiscalService.ClosePeriod(c.Request.Context(), orgID, periodID, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to close period")
		return
	}

	logger.Info("Period closed successfully", slog.String("period_id", periodID))
	c.Status(http.StatusNoContent)
}

// reopenPeriod makes a closed period accept entries again.
func (h *fiscalHandler) reopenPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	periodID := c.Param("periodID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.fiscalService.ReopenPeriod(c.Request.Context(), orgID, periodID, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to reopen period")
		return
	}

	logger.Info("Period reopened successfully", slog.String("period_id", periodID))
	c.Status(http.StatusNoContent)
}
