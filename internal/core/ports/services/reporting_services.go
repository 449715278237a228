package services

import (
	"context"
	"time"

	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvcFacade exposes the four read-only ledger reports. Reports are
// derived exclusively from POSTED entries and mutate nothing.
type ReportingSvcFacade interface {
	// TrialBalance nets every account's posted activity into a single debit
	// or credit column; the two column totals must be equal.
	TrialBalance(ctx context.Context, organizationID string, periodID *string) (*domain.TrialBalanceReport, error)

	// GeneralLedger returns one account's posted lines in chronological order
	// with a running balance starting from openingBalance (zero when nil).
	GeneralLedger(ctx context.Context, organizationID string, accountID string, from, to time.Time, openingBalance *decimal.Decimal) (*domain.GeneralLedgerReport, error)

	// ProfitAndLoss nets revenue and expense activity in the date range.
	ProfitAndLoss(ctx context.Context, organizationID string, from, to time.Time) (*domain.PAndLReport, error)

	// BalanceSheet groups asset, liability and equity balances as of a date.
	BalanceSheet(ctx context.Context, organizationID string, asOf time.Time) (*domain.BalanceSheetReport, error)
}
