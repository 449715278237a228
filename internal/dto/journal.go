package dto

import (
	"time"

	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest is one line of a draft entry being created.
// Currency defaults to the organization base currency; exchange rate defaults
// to 1; base amounts default to debit/credit scaled by the exchange rate.
type CreateJournalLineRequest struct {
	AccountID    string           `json:"accountID" binding:"required"`
	Description  string           `json:"description"`
	Debit        decimal.Decimal  `json:"debit"`
	Credit       decimal.Decimal  `json:"credit"`
	CurrencyCode *string          `json:"currencyCode" binding:"omitempty,uppercase,len=3"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate"`
	BaseDebit    *decimal.Decimal `json:"baseDebit"`
	BaseCredit   *decimal.Decimal `json:"baseCredit"`
	ContactID    *string          `json:"contactID"`
	ProjectID    *string          `json:"projectID"`
	CostCenterID *string          `json:"costCenterID"`
}

// CreateJournalEntryRequest defines the data needed to create a draft entry.
// EntryNumber and FiscalPeriodID are allocated/resolved when omitted; totals
// are cross-checked against the line sums when supplied and derived otherwise.
type CreateJournalEntryRequest struct {
	EntryNumber    *int64                     `json:"entryNumber"`
	EntryDate      time.Time                  `json:"entryDate" binding:"required"`
	FiscalPeriodID *string                    `json:"fiscalPeriodID"`
	Description    string                     `json:"description" binding:"required"`
	Reference      string                     `json:"reference"`
	SourceModule   string                     `json:"sourceModule"`
	SourceID       string                     `json:"sourceID"`
	EntryType      domain.EntryType           `json:"entryType" binding:"omitempty,oneof=STANDARD ADJUSTING CLOSING REVERSING OPENING"`
	TotalDebit     *decimal.Decimal           `json:"totalDebit"`
	TotalCredit    *decimal.Decimal           `json:"totalCredit"`
	Lines          []CreateJournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// UpdateJournalEntryRequest defines the data allowed for editing a draft.
// A nil Lines leaves the existing lines untouched; a non-nil slice replaces
// them wholesale and re-validates balance.
type UpdateJournalEntryRequest struct {
	EntryDate   *time.Time                 `json:"entryDate"`
	Description *string                    `json:"description"`
	Reference   *string                    `json:"reference"`
	TotalDebit  *decimal.Decimal           `json:"totalDebit"`
	TotalCredit *decimal.Decimal           `json:"totalCredit"`
	Lines       []CreateJournalLineRequest `json:"lines" binding:"omitempty,min=2,dive"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID       string          `json:"lineID"`
	AccountID    string          `json:"accountID"`
	Description  string          `json:"description"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	BaseDebit    decimal.Decimal `json:"baseDebit"`
	BaseCredit   decimal.Decimal `json:"baseCredit"`
	LineNumber   int             `json:"lineNumber"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID        string                `json:"entryID"`
	EntryNumber    int64                 `json:"entryNumber"`
	EntryDate      time.Time             `json:"entryDate"`
	FiscalPeriodID string                `json:"fiscalPeriodID"`
	Description    string                `json:"description"`
	Reference      string                `json:"reference"`
	SourceModule   string                `json:"sourceModule"`
	SourceID       string                `json:"sourceID"`
	EntryType      domain.EntryType      `json:"entryType"`
	Status         domain.EntryStatus    `json:"status"`
	TotalDebit     decimal.Decimal       `json:"totalDebit"`
	TotalCredit    decimal.Decimal       `json:"totalCredit"`
	PostedBy       *string               `json:"postedBy,omitempty"`
	PostedAt       *time.Time            `json:"postedAt,omitempty"`
	Lines          []JournalLineResponse `json:"lines,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	CreatedBy      string                `json:"createdBy"`
}

// ToJournalLineResponse converts a domain.JournalLine to its DTO.
func ToJournalLineResponse(line *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:       line.LineID,
		AccountID:    line.AccountID,
		Description:  line.Description,
		Debit:        line.Debit,
		Credit:       line.Credit,
		CurrencyCode: line.CurrencyCode,
		ExchangeRate: line.ExchangeRate,
		BaseDebit:    line.BaseDebit,
		BaseCredit:   line.BaseCredit,
		LineNumber:   line.LineNumber,
	}
}

// ToJournalEntryResponse converts a domain.JournalEntry (with lines, when
// loaded) to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:        e.EntryID,
		EntryNumber:    e.EntryNumber,
		EntryDate:      e.EntryDate,
		FiscalPeriodID: e.FiscalPeriodID,
		Description:    e.Description,
		Reference:      e.Reference,
		SourceModule:   e.SourceModule,
		SourceID:       e.SourceID,
		EntryType:      e.EntryType,
		Status:         e.Status,
		TotalDebit:     e.TotalDebit,
		TotalCredit:    e.TotalCredit,
		PostedBy:       e.PostedBy,
		PostedAt:       e.PostedAt,
		CreatedAt:      e.CreatedAt,
		CreatedBy:      e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(e.Lines))
		for i := range e.Lines {
			resp.Lines[i] = ToJournalLineResponse(&e.Lines[i])
		}
	}
	return resp
}

// ListEntriesParams defines query parameters for listing journal entries.
// IncludeLines loads each entry's lines into the response page.
type ListEntriesParams struct {
	Limit        int     `form:"limit,default=20"`
	NextToken    *string `form:"nextToken"`
	IncludeLines bool    `form:"includeLines"`
}

// ListEntriesResponse is a page of journal entries plus the next-page token.
type ListEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}
