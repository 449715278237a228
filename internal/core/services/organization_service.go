package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	portsrepo "github.com/ledgerhouse/general_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerhouse/general_ledger_app/internal/core/ports/services"
	"github.com/ledgerhouse/general_ledger_app/internal/dto"
)

// organizationService manages the tenant boundary record.
type organizationService struct {
	BaseService
	orgRepo portsrepo.OrganizationRepository
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(orgRepo portsrepo.OrganizationRepository) portssvc.OrganizationSvcFacade {
	return &organizationService{orgRepo: orgRepo}
}

var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

// CreateOrganization registers a new organization. The base currency and
// fiscal-year start month are fixed at creation; every account and journal
// entry of the organization derives its defaults from them.
func (s *organizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, creatorUserID string) (*domain.Organization, error) {
	now := time.Now().UTC()
	org := domain.Organization{
		OrganizationID:       uuid.NewString(),
		Name:                 req.Name,
		BaseCurrencyCode:     req.BaseCurrencyCode,
		FiscalYearStartMonth: req.FiscalYearStartMonth,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.orgRepo.SaveOrganization(ctx, org); err != nil {
		s.LogError(ctx, err, "Failed to save organization", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save organization: %w", err)
	}

	s.LogInfo(ctx, "Organization created successfully", slog.String("organization_id", org.OrganizationID))
	return &org, nil
}

// GetOrganizationByID retrieves an organization by its identifier.
func (s *organizationService) GetOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find organization %s: %w", organizationID, err)
	}
	return org, nil
}
