package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ledgerhouse/general_ledger_app/internal/apperrors"
	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	portsrepo "github.com/ledgerhouse/general_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerhouse/general_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService derives the four ledger reports from posted entries. It is
// strictly read-only; every figure is an aggregation over journal_lines of
// POSTED entries, never over the cached account balances.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountSvc    portssvc.AccountSvcFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, accountSvc portssvc.AccountSvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		accountSvc:    accountSvc,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TrialBalance nets every account's posted activity into a single debit or
// credit column. The two column totals are equal whenever every posted entry
// balanced, which the posting engine guarantees.
func (s *reportingService) TrialBalance(ctx context.Context, organizationID string, periodID *string) (*domain.TrialBalanceReport, error) {
	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, organizationID, periodID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch trial balance data", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to fetch trial balance data: %w", err)
	}

	report := &domain.TrialBalanceReport{
		Rows:        make([]domain.TrialBalanceRow, 0, len(rows)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, row := range rows {
		net := row.Debit.Sub(row.Credit)
		netted := domain.TrialBalanceRow{
			AccountID:   row.AccountID,
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: row.AccountType,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		switch {
		case net.IsPositive():
			netted.Debit = net
		case net.IsNegative():
			netted.Credit = net.Neg()
		default:
			continue // fully netted accounts are omitted
		}
		report.Rows = append(report.Rows, netted)
		report.TotalDebit = report.TotalDebit.Add(netted.Debit)
		report.TotalCredit = report.TotalCredit.Add(netted.Credit)
	}
	return report, nil
}

// GeneralLedger returns one account's posted lines in chronological order with
// a running balance. The opening balance defaults to zero; callers reporting a
// mid-history window pass the balance as of the window start.
func (s *reportingService) GeneralLedger(ctx context.Context, organizationID string, accountID string, from, to time.Time, openingBalance *decimal.Decimal) (*domain.GeneralLedgerReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: report window end %s precedes start %s", apperrors.ErrValidation, to.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	if _, err := s.accountSvc.GetAccountByID(ctx, organizationID, accountID); err != nil {
		return nil, err
	}

	lines, err := s.reportingRepo.GetGeneralLedgerData(ctx, organizationID, accountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch general ledger data", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to fetch general ledger data: %w", err)
	}

	opening := decimal.Zero
	if openingBalance != nil {
		opening = *openingBalance
	}

	// The running balance accumulates signed debit - credit regardless of the
	// account's normal side, so credit-normal accounts run negative
	running := opening
	for i := range lines {
		running = running.Add(lines[i].Debit).Sub(lines[i].Credit)
		lines[i].RunningBalance = running
	}

	return &domain.GeneralLedgerReport{
		AccountID:      accountID,
		OpeningBalance: opening,
		ClosingBalance: running,
		Lines:          lines,
	}, nil
}

// ProfitAndLoss nets revenue and expense activity in the date range.
func (s *reportingService) ProfitAndLoss(ctx context.Context, organizationID string, from, to time.Time) (*domain.PAndLReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: report window end %s precedes start %s", apperrors.ErrValidation, to.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	revenue, expenses, err := s.reportingRepo.GetProfitAndLossData(ctx, organizationID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch profit and loss data", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to fetch profit and loss data: %w", err)
	}

	report := &domain.PAndLReport{
		Revenue:       revenue,
		Expenses:      expenses,
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, row := range revenue {
		report.TotalRevenue = report.TotalRevenue.Add(row.NetAmount)
	}
	for _, row := range expenses {
		report.TotalExpenses = report.TotalExpenses.Add(row.NetAmount)
	}
	report.NetIncome = report.TotalRevenue.Sub(report.TotalExpenses)
	return report, nil
}

// BalanceSheet groups asset, liability and equity balances as of a date.
// Net income accumulated through the date is folded into equity as a synthetic
// current-earnings row so the accounting equation holds before closing entries
// are booked.
func (s *reportingService) BalanceSheet(ctx context.Context, organizationID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	assets, liabilities, equity, err := s.reportingRepo.GetBalanceSheetData(ctx, organizationID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch balance sheet data", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to fetch balance sheet data: %w", err)
	}

	report := &domain.BalanceSheetReport{
		Assets:           assets,
		Liabilities:      liabilities,
		Equity:           equity,
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	for _, row := range assets {
		report.TotalAssets = report.TotalAssets.Add(row.NetAmount)
	}
	for _, row := range liabilities {
		report.TotalLiabilities = report.TotalLiabilities.Add(row.NetAmount)
	}
	for _, row := range equity {
		report.TotalEquity = report.TotalEquity.Add(row.NetAmount)
	}

	pnl, err := s.ProfitAndLoss(ctx, organizationID, time.Time{}, asOf)
	if err != nil {
		return nil, err
	}
	if !pnl.NetIncome.IsZero() {
		report.Equity = append(report.Equity, domain.AccountAmount{
			Name:      "Current Earnings",
			NetAmount: pnl.NetIncome,
		})
		report.TotalEquity = report.TotalEquity.Add(pnl.NetIncome)
	}

	return report, nil
}
