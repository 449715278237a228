package repositories

import (
	"context"
	"time"

	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
)

// ReportingRepository defines read-only aggregation over POSTED entries.
// Draft and voided entries never contribute to report totals.
type ReportingRepository interface {
	// GetTrialBalanceData retrieves per-account base debit/credit sums across
	// posted entries, optionally restricted to one fiscal period.
	GetTrialBalanceData(ctx context.Context, organizationID string, periodID *string) ([]domain.TrialBalanceRow, error)

	// GetGeneralLedgerData retrieves the posted lines of one account in
	// chronological order within the date range. Running balances are
	// computed by the service.
	GetGeneralLedgerData(ctx context.Context, organizationID string, accountID string, from, to time.Time) ([]domain.GeneralLedgerLine, error)

	// GetProfitAndLossData retrieves revenue and expense net amounts for the
	// date range.
	GetProfitAndLossData(ctx context.Context, organizationID string, from, to time.Time) ([]domain.AccountAmount, []domain.AccountAmount, error)

	// GetBalanceSheetData retrieves asset, liability and equity net amounts as
	// of a specific date.
	GetBalanceSheetData(ctx context.Context, organizationID string, asOf time.Time) ([]domain.AccountAmount, []domain.AccountAmount, []domain.AccountAmount, error)
}
