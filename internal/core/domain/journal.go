package domain

import (
	"fmt"
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

const (
	Standard  EntryType = "STANDARD"
	Adjusting EntryType = "ADJUSTING"
	Closing   EntryType = "CLOSING"
	Reversing EntryType = "REVERSING"
	Opening   EntryType = "OPENING"
)

// IsValid reports whether t is a supported entry type.
func (t EntryType) IsValid() bool {
	switch t {
	case Standard, Adjusting, Closing, Reversing, Opening:
		return true
	}
	return false
}

// BalanceTolerance is the absolute tolerance within which an entry's debit and
// credit totals must agree. 0.01 base-currency units.
var BalanceTolerance = decimal.New(1, -2)

// JournalEntry represents a single, balanced financial event composed of
// multiple journal lines.
type JournalEntry struct {
	EntryID        string      `json:"entryID"`        // Primary key (UUID)
	OrganizationID string      `json:"organizationID"` // FK -> organizations.organization_id (Not Null)
	EntryNumber    int64       `json:"entryNumber"`    // Sequential per organization; never reused
	EntryDate      time.Time   `json:"entryDate"`      // Date the event occurred
	FiscalPeriodID string      `json:"fiscalPeriodID"` // FK -> fiscal_periods.period_id (Not Null)
	Description    string      `json:"description"`
	Reference      string      `json:"reference"`    // Free-form external reference
	SourceModule   string      `json:"sourceModule"` // Originating module (invoicing, payroll, ...), empty for manual entries
	SourceID       string      `json:"sourceID"`     // Identifier of the originating business event
	EntryType      EntryType   `json:"entryType"`
	Status         EntryStatus `json:"status"`

	TotalDebit  decimal.Decimal `json:"totalDebit"`  // Must equal sum(line.debit)
	TotalCredit decimal.Decimal `json:"totalCredit"` // Must equal sum(line.credit)

	PostedBy *string    `json:"postedBy,omitempty"` // Set once posted
	PostedAt *time.Time `json:"postedAt,omitempty"`

	Lines []JournalLine `json:"lines,omitempty"` // Often loaded separately
	AuditFields
}

// JournalLine represents a single line item within a journal entry, affecting
// one account. A line has no identity outside its entry.
type JournalLine struct {
	LineID       string          `json:"lineID"`  // Primary key (UUID)
	EntryID      string          `json:"entryID"` // FK -> journal_entries.entry_id (Not Null)
	AccountID    string          `json:"accountID"`
	Description  string          `json:"description"`
	Debit        decimal.Decimal `json:"debit"`  // >= 0
	Credit       decimal.Decimal `json:"credit"` // >= 0; exactly one of debit/credit is non-zero
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"` // Rate to the organization base currency; 1 for base-currency lines
	BaseDebit    decimal.Decimal `json:"baseDebit"`    // Debit * ExchangeRate
	BaseCredit   decimal.Decimal `json:"baseCredit"`   // Credit * ExchangeRate
	ContactID    *string         `json:"contactID,omitempty"`
	ProjectID    *string         `json:"projectID,omitempty"`
	CostCenterID *string         `json:"costCenterID,omitempty"`
	LineNumber   int             `json:"lineNumber"` // Position within the entry, 1-based
	AuditFields
}

// Validate checks the structural rules for a single line. A line must debit or
// credit exactly one side with a non-negative amount.
func (l JournalLine) Validate() error {
	if l.AccountID == "" {
		return fmt.Errorf("line %d: account id is required", l.LineNumber)
	}
	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return fmt.Errorf("line %d: debit and credit must not be negative", l.LineNumber)
	}
	debitSet := l.Debit.IsPositive()
	creditSet := l.Credit.IsPositive()
	if debitSet && creditSet {
		return fmt.Errorf("line %d: a line cannot carry both a debit and a credit", l.LineNumber)
	}
	if !debitSet && !creditSet {
		return fmt.Errorf("line %d: a line must carry either a debit or a credit", l.LineNumber)
	}
	if l.ExchangeRate.Sign() <= 0 {
		return fmt.Errorf("line %d: exchange rate must be positive", l.LineNumber)
	}
	return nil
}

// Validate checks the entry-level invariants: every line is valid, the stored
// totals match the line sums, and debits equal credits within BalanceTolerance.
// It holds for entries in any status.
func (e JournalEntry) Validate() error {
	if len(e.Lines) < 2 {
		return fmt.Errorf("entry must have at least two lines")
	}
	debitSum := decimal.Zero
	creditSum := decimal.Zero
	for _, line := range e.Lines {
		if err := line.Validate(); err != nil {
			return err
		}
		debitSum = debitSum.Add(line.Debit)
		creditSum = creditSum.Add(line.Credit)
	}
	if !debitSum.Sub(e.TotalDebit).Abs().LessThanOrEqual(BalanceTolerance) {
		return fmt.Errorf("total debit %s does not match line sum %s", e.TotalDebit, debitSum)
	}
	if !creditSum.Sub(e.TotalCredit).Abs().LessThanOrEqual(BalanceTolerance) {
		return fmt.Errorf("total credit %s does not match line sum %s", e.TotalCredit, creditSum)
	}
	if !e.TotalDebit.Sub(e.TotalCredit).Abs().LessThanOrEqual(BalanceTolerance) {
		return fmt.Errorf("entry does not balance: debit %s, credit %s", e.TotalDebit, e.TotalCredit)
	}
	return nil
}

// IsEditable reports whether the entry may still be modified or deleted.
// Only drafts are editable; posted and voided entries are immutable history.
func (e JournalEntry) IsEditable() bool {
	return e.Status == Draft
}
