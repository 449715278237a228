package models

// Organization is the organizations table row.
type Organization struct {
	OrganizationID       string `db:"organization_id"`
	Name                 string `db:"name"`
	BaseCurrencyCode     string `db:"base_currency_code"`
	FiscalYearStartMonth int    `db:"fiscal_year_start_month"`
	AuditFields
}
