package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	portsrepo "github.com/ledgerhouse/general_ledger_app/internal/core/ports/repositories"
)

// PgxReportingRepository aggregates posted journal lines into report rows.
// Every query filters on journal_entries.status = 'POSTED': drafts and voided
// entries never contribute to a report, and the aggregations read the lines
// themselves rather than the cached account balances.
type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// newPgxReportingRepository creates a new repository for report aggregation.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetTrialBalanceData retrieves per-account base debit/credit sums across
// posted entries, optionally restricted to one fiscal period.
func (r *PgxReportingRepository) GetTrialBalanceData(ctx context.Context, organizationID string, periodID *string) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT a.account_id, a.code, a.name, a.account_type,
		       COALESCE(SUM(jl.base_debit), 0) AS total_debit,
		       COALESCE(SUM(jl.base_credit), 0) AS total_credit
		FROM journal_lines jl
		JOIN journal_entries je ON je.entry_id = jl.entry_id
		JOIN accounts a ON a.account_id = jl.account_id
		WHERE je.organization_id = $1 AND je.status = 'POSTED'
	`
	args := []any{organizationID}
	if periodID != nil && *periodID != "" {
		query += ` AND je.fiscal_period_id = $2`
		args = append(args, *periodID)
	}
	query += `
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code;
	`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trial balance data: %w", err)
	}
	defer rows.Close()

	var result []domain.TrialBalanceRow
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(&row.AccountID, &row.AccountCode, &row.AccountName, &row.AccountType, &row.Debit, &row.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan trial balance row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}
	return result, nil
}

// GetGeneralLedgerData retrieves the posted lines of one account in
// chronological order within the date range. Running balances are computed by
// the service.
func (r *PgxReportingRepository) GetGeneralLedgerData(ctx context.Context, organizationID string, accountID string, from, to time.Time) ([]domain.GeneralLedgerLine, error) {
	query := `
		SELECT je.entry_id, je.entry_number, je.entry_date, je.description, jl.description,
		       jl.base_debit, jl.base_credit
		FROM journal_lines jl
		JOIN journal_entries je ON je.entry_id = jl.entry_id
		WHERE je.organization_id = $1 AND je.status = 'POSTED'
		  AND jl.account_id = $2
		  AND je.entry_date >= $3 AND je.entry_date <= $4
		ORDER BY je.entry_date, je.created_at, jl.line_number;
	`
	rows, err := r.pool.Query(ctx, query, organizationID, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query general ledger data: %w", err)
	}
	defer rows.Close()

	var lines []domain.GeneralLedgerLine
	for rows.Next() {
		var line domain.GeneralLedgerLine
		if err := rows.Scan(&line.EntryID, &line.EntryNumber, &line.EntryDate, &line.EntryDescription, &line.LineDescription, &line.Debit, &line.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan general ledger line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating general ledger lines: %w", err)
	}
	return lines, nil
}

// queryAccountAmounts runs a net-amount aggregation for one account type.
// The net expression follows the account type's normal side.
func (r *PgxReportingRepository) queryAccountAmounts(ctx context.Context, organizationID string, accountType domain.AccountType, from, to time.Time) ([]domain.AccountAmount, error) {
	netExpr := `SUM(jl.base_debit - jl.base_credit)`
	if accountType.NormalSide() == domain.CreditNormal {
		netExpr = `SUM(jl.base_credit - jl.base_debit)`
	}

	query := `
		SELECT a.account_id, a.code, a.name, COALESCE(` + netExpr + `, 0) AS net_amount
		FROM journal_lines jl
		JOIN journal_entries je ON je.entry_id = jl.entry_id
		JOIN accounts a ON a.account_id = jl.account_id
		WHERE je.organization_id = $1 AND je.status = 'POSTED'
		  AND a.account_type = $2
		  AND je.entry_date >= $3 AND je.entry_date <= $4
		GROUP BY a.account_id, a.code, a.name
		HAVING COALESCE(` + netExpr + `, 0) <> 0
		ORDER BY a.code;
	`
	rows, err := r.pool.Query(ctx, query, organizationID, string(accountType), from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s amounts: %w", accountType, err)
	}
	defer rows.Close()

	var amounts []domain.AccountAmount
	for rows.Next() {
		var amount domain.AccountAmount
		if err := rows.Scan(&amount.AccountID, &amount.AccountCode, &amount.Name, &amount.NetAmount); err != nil {
			return nil, fmt.Errorf("failed to scan %s amount row: %w", accountType, err)
		}
		amounts = append(amounts, amount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s amount rows: %w", accountType, err)
	}
	return amounts, nil
}

// GetProfitAndLossData retrieves revenue and expense net amounts for the
// date range.
func (r *PgxReportingRepository) GetProfitAndLossData(ctx context.Context, organizationID string, from, to time.Time) ([]domain.AccountAmount, []domain.AccountAmount, error) {
	revenue, err := r.queryAccountAmounts(ctx, organizationID, domain.Revenue, from, to)
	if err != nil {
		return nil, nil, err
	}
	expenses, err := r.queryAccountAmounts(ctx, organizationID, domain.Expense, from, to)
	if err != nil {
		return nil, nil, err
	}
	return revenue, expenses, nil
}

// GetBalanceSheetData retrieves asset, liability and equity net amounts as of
// a specific date.
func (r *PgxReportingRepository) GetBalanceSheetData(ctx context.Context, organizationID string, asOf time.Time) ([]domain.AccountAmount, []domain.AccountAmount, []domain.AccountAmount, error) {
	var start time.Time // all history up to asOf

	assets, err := r.queryAccountAmounts(ctx, organizationID, domain.Asset, start, asOf)
	if err != nil {
		return nil, nil, nil, err
	}
	liabilities, err := r.queryAccountAmounts(ctx, organizationID, domain.Liability, start, asOf)
	if err != nil {
		return nil, nil, nil, err
	}
	equity, err := r.queryAccountAmounts(ctx, organizationID, domain.Equity, start, asOf)
	if err != nil {
		return nil, nil, nil, err
	}
	return assets, liabilities, equity, nil
}
