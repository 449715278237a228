package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the lifecycle state of a journal entry.
type EntryStatus string

const (
	Draft  EntryStatus = "DRAFT"
	Posted EntryStatus = "POSTED"
	Voided EntryStatus = "VOIDED"
)

// EntryType classifies a journal entry.
type EntryType string

// JournalEntry is the journal_entries table row.
type JournalEntry struct {
	EntryID        string          `db:"entry_id"`
	OrganizationID string          `db:"organization_id"`
	EntryNumber    int64           `db:"entry_number"`
	EntryDate      time.Time       `db:"entry_date"`
	FiscalPeriodID string          `db:"fiscal_period_id"`
	Description    string          `db:"description"`
	Reference      string          `db:"reference"`
	SourceModule   string          `db:"source_module"`
	SourceID       string          `db:"source_id"`
	EntryType      EntryType       `db:"entry_type"`
	Status         EntryStatus     `db:"status"`
	TotalDebit     decimal.Decimal `db:"total_debit"`
	TotalCredit    decimal.Decimal `db:"total_credit"`
	PostedBy       *string         `db:"posted_by"` // Nullable
	PostedAt       *time.Time      `db:"posted_at"` // Nullable
	AuditFields
}

// JournalLine is the journal_lines table row.
type JournalLine struct {
	LineID       string          `db:"line_id"`
	EntryID      string          `db:"entry_id"`
	AccountID    string          `db:"account_id"`
	Description  string          `db:"description"`
	Debit        decimal.Decimal `db:"debit"`
	Credit       decimal.Decimal `db:"credit"`
	CurrencyCode string          `db:"currency_code"`
	ExchangeRate decimal.Decimal `db:"exchange_rate"`
	BaseDebit    decimal.Decimal `db:"base_debit"`
	BaseCredit   decimal.Decimal `db:"base_credit"`
	ContactID    *string         `db:"contact_id"`     // Nullable
	ProjectID    *string         `db:"project_id"`     // Nullable
	CostCenterID *string         `db:"cost_center_id"` // Nullable
	LineNumber   int             `db:"line_number"`
	AuditFields
}
