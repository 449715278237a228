package models

import "time"

// PeriodStatus enumerates valid fiscal period states.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// FiscalYear is the fiscal_years table row.
type FiscalYear struct {
	FiscalYearID   string       `db:"fiscal_year_id"`
	OrganizationID string       `db:"organization_id"`
	Name           string       `db:"name"`
	StartDate      time.Time    `db:"start_date"`
	EndDate        time.Time    `db:"end_date"`
	Status         PeriodStatus `db:"status"`
	AuditFields
}

// FiscalPeriod is the fiscal_periods table row.
type FiscalPeriod struct {
	PeriodID       string       `db:"period_id"`
	FiscalYearID   string       `db:"fiscal_year_id"`
	OrganizationID string       `db:"organization_id"`
	Name           string       `db:"name"`
	StartDate      time.Time    `db:"start_date"`
	EndDate        time.Time    `db:"end_date"`
	Status         PeriodStatus `db:"status"`
	AuditFields
}
