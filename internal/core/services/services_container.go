package services

import (
	portsrepo "github.com/ledgerhouse/general_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerhouse/general_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires every service with its dependencies from the
// repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	orgSvc := NewOrganizationService(repos.OrganizationRepo)
	accountSvc := NewAccountService(repos.AccountRepo, orgSvc)
	fiscalSvc := NewFiscalService(repos.FiscalRepo, orgSvc)
	journalSvc := NewJournalService(repos.JournalRepo, accountSvc, fiscalSvc, orgSvc)
	postingSvc := NewPostingService(repos.JournalRepo, accountSvc, fiscalSvc, journalSvc)
	reportingSvc := NewReportingService(repos.ReportingRepo, accountSvc)

	return &portssvc.ServiceContainer{
		Organization: orgSvc,
		Account:      accountSvc,
		Journal:      journalSvc,
		Posting:      postingSvc,
		Fiscal:       fiscalSvc,
		Reporting:    reportingSvc,
	}
}
