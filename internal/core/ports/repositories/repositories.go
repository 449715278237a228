package repositories

// RepositoryProvider bundles every repository implementation handed to the
// service container.
type RepositoryProvider struct {
	AccountRepo      AccountRepositoryFacade
	JournalRepo      JournalRepositoryFacade
	FiscalRepo       FiscalRepository
	OrganizationRepo OrganizationRepository
	ReportingRepo    ReportingRepository
}
