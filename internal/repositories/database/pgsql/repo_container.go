package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/ledgerhouse/general_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider constructs every Postgres repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	organizationRepo := newPgxOrganizationRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool, accountRepo)
	fiscalRepo := newPgxFiscalRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:      accountRepo,
		JournalRepo:      journalRepo,
		FiscalRepo:       fiscalRepo,
		OrganizationRepo: organizationRepo,
		ReportingRepo:    reportingRepo,
	}
}
