package services

import (
	"context"

	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	"github.com/ledgerhouse/general_ledger_app/internal/dto"
)

// OrganizationSvcFacade exposes the tenant boundary record.
type OrganizationSvcFacade interface {
	// CreateOrganization registers an organization with its base currency and
	// fiscal-year start month.
	CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, creatorUserID string) (*domain.Organization, error)

	// GetOrganizationByID retrieves an organization.
	GetOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
}
