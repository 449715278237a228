package repositories

import (
	"context"
	"time"

	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
)

// FiscalRepository defines operations for fiscal years and periods.
type FiscalRepository interface {
	// SaveFiscalYear persists a fiscal year together with its periods in one
	// DB transaction.
	SaveFiscalYear(ctx context.Context, year domain.FiscalYear, periods []domain.FiscalPeriod) error

	// FindFiscalYearByID retrieves a fiscal year with its periods.
	FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error)

	// ListFiscalYearsByOrganization retrieves all fiscal years of an
	// organization, periods included, ordered by start date.
	ListFiscalYearsByOrganization(ctx context.Context, organizationID string) ([]domain.FiscalYear, error)

	// FindPeriodByID retrieves a single fiscal period.
	FindPeriodByID(ctx context.Context, periodID string) (*domain.FiscalPeriod, error)

	// FindOpenPeriodForDate returns the unique open period whose window
	// contains the date, or ErrNotFound when none does.
	FindOpenPeriodForDate(ctx context.Context, organizationID string, date time.Time) (*domain.FiscalPeriod, error)

	// HasOverlappingPeriods reports whether any existing period of the
	// organization overlaps the [start, end] window.
	HasOverlappingPeriods(ctx context.Context, organizationID string, start, end time.Time) (bool, error)

	// UpdatePeriodStatus transitions a period between OPEN and CLOSED.
	UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, userID string, now time.Time) error
}
