package services

import (
	"context"
	"time"

	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	"github.com/ledgerhouse/general_ledger_app/internal/dto"
)

// FiscalSvcFacade exposes the fiscal calendar.
type FiscalSvcFacade interface {
	// GenerateFiscalYear creates a fiscal year with twelve monthly periods
	// starting at the organization's fiscal-year start month.
	GenerateFiscalYear(ctx context.Context, organizationID string, req dto.GenerateFiscalYearRequest, creatorUserID string) (*domain.FiscalYear, error)

	// FindPeriodForDate resolves a transaction date to the unique open period
	// containing it. Returns ErrNoOpenPeriod when none exists; callers treat
	// that as a hard failure, never a default.
	FindPeriodForDate(ctx context.Context, organizationID string, date time.Time) (*domain.FiscalPeriod, error)

	// ListFiscalYears retrieves the organization's fiscal years with periods.
	ListFiscalYears(ctx context.Context, organizationID string) ([]domain.FiscalYear, error)

	// GetPeriodByID retrieves one period scoped to the organization.
	GetPeriodByID(ctx context.Context, organizationID string, periodID string) (*domain.FiscalPeriod, error)

	// ClosePeriod stops new entries from being dated into the period.
	ClosePeriod(ctx context.Context, organizationID string, periodID string, userID string) error

	// ReopenPeriod makes a closed period accept entries again.
	ReopenPeriod(ctx context.Context, organizationID string, periodID string, userID string) error
}
