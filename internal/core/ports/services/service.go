package services

// ServiceContainer bundles every service facade handed to the HTTP layer.
type ServiceContainer struct {
	Organization OrganizationSvcFacade
	Account      AccountSvcFacade
	Journal      JournalSvcFacade
	Posting      PostingSvcFacade
	Fiscal       FiscalSvcFacade
	Reporting    ReportingSvcFacade
}
