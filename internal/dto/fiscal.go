package dto

import (
	"time"

	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
)

// GenerateFiscalYearRequest defines the data needed to generate a fiscal year.
// StartYear is the calendar year the fiscal year begins in; the start month
// comes from the organization record.
type GenerateFiscalYearRequest struct {
	StartYear int    `json:"startYear" binding:"required,min=1900,max=2999"`
	Name      string `json:"name"` // Defaults to "FY<StartYear>"
}

// FiscalPeriodResponse defines the data returned for a fiscal period.
type FiscalPeriodResponse struct {
	PeriodID  string              `json:"periodID"`
	Name      string              `json:"name"`
	StartDate time.Time           `json:"startDate"`
	EndDate   time.Time           `json:"endDate"`
	Status    domain.PeriodStatus `json:"status"`
}

// FiscalYearResponse defines the data returned for a fiscal year.
type FiscalYearResponse struct {
	FiscalYearID string                 `json:"fiscalYearID"`
	Name         string                 `json:"name"`
	StartDate    time.Time              `json:"startDate"`
	EndDate      time.Time              `json:"endDate"`
	Status       domain.PeriodStatus    `json:"status"`
	Periods      []FiscalPeriodResponse `json:"periods"`
}

// ToFiscalPeriodResponse converts a domain.FiscalPeriod to its DTO.
func ToFiscalPeriodResponse(p *domain.FiscalPeriod) FiscalPeriodResponse {
	return FiscalPeriodResponse{
		PeriodID:  p.PeriodID,
		Name:      p.Name,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Status:    p.Status,
	}
}

// ToFiscalYearResponse converts a domain.FiscalYear (with periods) to its DTO.
func ToFiscalYearResponse(y *domain.FiscalYear) FiscalYearResponse {
	periods := make([]FiscalPeriodResponse, len(y.Periods))
	for i := range y.Periods {
		periods[i] = ToFiscalPeriodResponse(&y.Periods[i])
	}
	return FiscalYearResponse{
		FiscalYearID: y.FiscalYearID,
		Name:         y.Name,
		StartDate:    y.StartDate,
		EndDate:      y.EndDate,
		Status:       y.Status,
		Periods:      periods,
	}
}
