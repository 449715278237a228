package domain

import "time"

// PeriodStatus enumerates valid fiscal period states.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// FiscalYear groups the periods of one accounting year for an organization.
type FiscalYear struct {
	FiscalYearID   string       `json:"fiscalYearID"` // Primary key (UUID)
	OrganizationID string       `json:"organizationID"`
	Name           string       `json:"name"` // e.g. "FY2026"
	StartDate      time.Time    `json:"startDate"`
	EndDate        time.Time    `json:"endDate"`
	Status         PeriodStatus `json:"status"`
	Periods        []FiscalPeriod `json:"periods,omitempty"`
	AuditFields
}

// FiscalPeriod is a non-overlapping date window within a fiscal year. Every
// journal entry's date must fall inside exactly one open period.
type FiscalPeriod struct {
	PeriodID       string       `json:"periodID"` // Primary key (UUID)
	FiscalYearID   string       `json:"fiscalYearID"`
	OrganizationID string       `json:"organizationID"`
	Name           string       `json:"name"` // e.g. "2026-04"
	StartDate      time.Time    `json:"startDate"`
	EndDate        time.Time    `json:"endDate"` // Inclusive
	Status         PeriodStatus `json:"status"`
	AuditFields
}

// Contains reports whether date falls inside the period window (inclusive on
// both ends, date precision).
func (p FiscalPeriod) Contains(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(p.StartDate.Truncate(24*time.Hour)) && !d.After(p.EndDate.Truncate(24*time.Hour))
}
