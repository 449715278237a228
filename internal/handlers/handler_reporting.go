package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/ledgerhouse/general_ledger_app/internal/core/ports/services"
	"github.com/ledgerhouse/general_ledger_app/internal/dto"
	"github.com/ledgerhouse/general_ledger_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// reportingHandler handles HTTP requests for the ledger reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers report routes, nested under an
// organization.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/general-ledger/:accountID", h.generalLedger)
		reports.GET("/profit-and-loss", h.profitAndLoss)
		reports.GET("/balance-sheet", h.balanceSheet)
	}
}

// trialBalance returns the netted per-account balances.
func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var params dto.TrialBalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), orgID, params.PeriodID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build trial balance")
		return
	}

	c.JSON(http.StatusOK, report)
}

// generalLedger returns one account's posted activity with running balances.
func (h *reportingHandler) generalLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	accountID := c.Param("accountID")

	var params dto.GeneralLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var openingBalance *decimal.Decimal
	if params.OpeningBalance != nil && *params.OpeningBalance != "" {
		parsed, err := decimal.NewFromString(*params.OpeningBalance)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid opening balance: " + err.Error()})
			return
		}
		openingBalance = &parsed
	}

	report, err := h.reportingService.GeneralLedger(c.Request.Context(), orgID, accountID, params.From, params.To, openingBalance)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build general ledger")
		return
	}

	c.JSON(http.StatusOK, report)
}

// profitAndLoss returns the income statement for the date range.
func (h *reportingHandler) profitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), orgID, params.From, params.To)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build profit and loss")
		return
	}

	c.JSON(http.StatusOK, report)
}

// balanceSheet returns the grouped balances as of a date.
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var params dto.AsOfParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), orgID, params.AsOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build balance sheet")
		return
	}

	c.JSON(http.StatusOK, report)
}
