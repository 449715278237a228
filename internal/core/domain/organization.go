package domain

// Organization is the narrow tenant boundary the ledger consumes: an id, the
// reporting (base) currency, and the month the fiscal year starts in. Tenant
// resolution and membership live outside this service.
type Organization struct {
	OrganizationID       string `json:"organizationID"` // Primary key (UUID)
	Name                 string `json:"name"`
	BaseCurrencyCode     string `json:"baseCurrencyCode"`     // All account balances and base amounts use this currency
	FiscalYearStartMonth int    `json:"fiscalYearStartMonth"` // 1..12; used when fiscal years are generated
	AuditFields
}
