package dto

import (
	"time"

	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
)

// CreateOrganizationRequest defines the data needed to register an organization.
type CreateOrganizationRequest struct {
	Name                 string `json:"name" binding:"required"`
	BaseCurrencyCode     string `json:"baseCurrencyCode" binding:"required,uppercase,len=3"`
	FiscalYearStartMonth int    `json:"fiscalYearStartMonth" binding:"required,min=1,max=12"`
}

// OrganizationResponse defines the data returned for an organization.
type OrganizationResponse struct {
	OrganizationID       string    `json:"organizationID"`
	Name                 string    `json:"name"`
	BaseCurrencyCode     string    `json:"baseCurrencyCode"`
	FiscalYearStartMonth int       `json:"fiscalYearStartMonth"`
	CreatedAt            time.Time `json:"createdAt"`
}

// ToOrganizationResponse converts a domain.Organization to its DTO.
func ToOrganizationResponse(org *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID:       org.OrganizationID,
		Name:                 org.Name,
		BaseCurrencyCode:     org.BaseCurrencyCode,
		FiscalYearStartMonth: org.FiscalYearStartMonth,
		CreatedAt:            org.CreatedAt,
	}
}
