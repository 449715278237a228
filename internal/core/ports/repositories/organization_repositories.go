package repositories

import (
	"context"

	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
)

// OrganizationRepository defines operations for the tenant boundary record.
// The ledger only needs the organization id, base currency, and fiscal-year
// start month; everything else about tenants lives outside this service.
type OrganizationRepository interface {
	// SaveOrganization persists a new organization.
	SaveOrganization(ctx context.Context, org domain.Organization) error

	// FindOrganizationByID retrieves an organization by its unique identifier.
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
}
