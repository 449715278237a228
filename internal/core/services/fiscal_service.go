package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerhouse/general_ledger_app/internal/apperrors"
	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	portsrepo "github.com/ledgerhouse/general_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerhouse/general_ledger_app/internal/core/ports/services"
	"github.com/ledgerhouse/general_ledger_app/internal/dto"
)

// fiscalService manages the fiscal calendar: years, periods, and the date to
// period resolution the journal store depends on.
type fiscalService struct {
	BaseService
	fiscalRepo portsrepo.FiscalRepository
	orgSvc     portssvc.OrganizationSvcFacade
}

// NewFiscalService creates a new FiscalService.
func NewFiscalService(fiscalRepo portsrepo.FiscalRepository, orgSvc portssvc.OrganizationSvcFacade) portssvc.FiscalSvcFacade {
	return &fiscalService{
		fiscalRepo: fiscalRepo,
		orgSvc:     orgSvc,
	}
}

var _ portssvc.FiscalSvcFacade = (*fiscalService)(nil)

// GenerateFiscalYear creates a fiscal year with twelve monthly periods. The
// year starts on the first day of the organization's fiscal-year start month
// and may not overlap any existing period.
func (s *fiscalService) GenerateFiscalYear(ctx context.Context, organizationID string, req dto.GenerateFiscalYearRequest, creatorUserID string) (*domain.FiscalYear, error) {
	org, err := s.orgSvc.GetOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	startDate := time.Date(req.StartYear, time.Month(org.FiscalYearStartMonth), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(1, 0, -1)

	overlaps, err := s.fiscalRepo.HasOverlappingPeriods(ctx, organizationID, startDate, endDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to check period overlap", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to check period overlap: %w", err)
	}
	if overlaps {
		return nil, fmt.Errorf("%w: fiscal year starting %s overlaps existing periods", apperrors.ErrDuplicate, startDate.Format("2006-01-02"))
	}

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("FY%d", req.StartYear)
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	year := domain.FiscalYear{
		FiscalYearID:   uuid.NewString(),
		OrganizationID: organizationID,
		Name:           name,
		StartDate:      startDate,
		EndDate:        endDate,
		Status:         domain.PeriodOpen,
		AuditFields:    audit,
	}

	periods := make([]domain.FiscalPeriod, 12)
	for i := 0; i < 12; i++ {
		periodStart := startDate.AddDate(0, i, 0)
		periodEnd := periodStart.AddDate(0, 1, -1)
		periods[i] = domain.FiscalPeriod{
			PeriodID:       uuid.NewString(),
			FiscalYearID:   year.FiscalYearID,
			OrganizationID: organizationID,
			Name:           periodStart.Format("2006-01"),
			StartDate:      periodStart,
			EndDate:        periodEnd,
			Status:         domain.PeriodOpen,
			AuditFields:    audit,
		}
	}

	if err := s.fiscalRepo.SaveFiscalYear(ctx, year, periods); err != nil {
		s.LogError(ctx, err, "Failed to save fiscal year", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to save fiscal year: %w", err)
	}
	year.Periods = periods

	s.LogInfo(ctx, "Fiscal year generated", slog.String("fiscal_year_id", year.FiscalYearID), slog.String("name", name))
	return &year, nil
}

// FindPeriodForDate resolves a transaction date to the unique open period
// containing it. A missing period is a hard failure for the caller; entries
// are never silently dated into an arbitrary period.
func (s *fiscalService) FindPeriodForDate(ctx context.Context, organizationID string, date time.Time) (*domain.FiscalPeriod, error) {
	period, err := s.fiscalRepo.FindOpenPeriodForDate(ctx, organizationID, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no open fiscal period contains %s", apperrors.ErrNoOpenPeriod, date.Format("2006-01-02"))
		}
		s.LogError(ctx, err, "Failed to resolve period for date", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to resolve fiscal period: %w", err)
	}
	return period, nil
}

// ListFiscalYears retrieves the organization's fiscal years with their periods.
func (s *fiscalService) ListFiscalYears(ctx context.Context, organizationID string) ([]domain.FiscalYear, error) {
	years, err := s.fiscalRepo.ListFiscalYearsByOrganization(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fiscal years", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list fiscal years: %w", err)
	}
	return years, nil
}

// GetPeriodByID retrieves one period scoped to the organization.
func (s *fiscalService) GetPeriodByID(ctx context.Context, organizationID string, periodID string) (*domain.FiscalPeriod, error) {
	period, err := s.fiscalRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to find period %s: %w", periodID, err)
	}
	if period.OrganizationID != organizationID {
		return nil, fmt.Errorf("%w: period %s", apperrors.ErrNotFound, periodID)
	}
	return period, nil
}

// ClosePeriod stops new entries from being dated into the period. Already
// posted entries are unaffected.
func (s *fiscalService) ClosePeriod(ctx context.Context, organizationID string, periodID string, userID string) error {
	period, err := s.GetPeriodByID(ctx, organizationID, periodID)
	if err != nil {
		return err
	}
	if period.Status == domain.PeriodClosed {
		return fmt.Errorf("%w: period %s is already closed", apperrors.ErrInvalidState, periodID)
	}

	if err := s.fiscalRepo.UpdatePeriodStatus(ctx, periodID, domain.PeriodClosed, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to close period", slog.String("period_id", periodID))
		return fmt.Errorf("failed to close period: %w", err)
	}

	s.LogInfo(ctx, "Period closed", slog.String("period_id", periodID))
	return nil
}

// ReopenPeriod makes a closed period accept entries again.
func (s *fiscalService) ReopenPeriod(ctx context.Context, organizationID string, periodID string, userID string) error {
	period, err := s.GetPeriodByID(ctx, organizationID, periodID)
	if err != nil {
		return err
	}
	if period.Status == domain.PeriodOpen {
		return fmt.Errorf("%w: period %s is already open", apperrors.ErrInvalidState, periodID)
	}

	if err := s.fiscalRepo.UpdatePeriodStatus(ctx, periodID, domain.PeriodOpen, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to reopen period", slog.String("period_id", periodID))
		return fmt.Errorf("failed to reopen period: %w", err)
	}

	s.LogInfo(ctx, "Period reopened", slog.String("period_id", periodID))
	return nil
}
