package mapping

import (
	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	"github.com/ledgerhouse/general_ledger_app/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:        d.EntryID,
		OrganizationID: d.OrganizationID,
		EntryNumber:    d.EntryNumber,
		EntryDate:      d.EntryDate,
		FiscalPeriodID: d.FiscalPeriodID,
		Description:    d.Description,
		Reference:      d.Reference,
		SourceModule:   d.SourceModule,
		SourceID:       d.SourceID,
		EntryType:      models.EntryType(d.EntryType),
		Status:         models.EntryStatus(d.Status),
		TotalDebit:     d.TotalDebit,
		TotalCredit:    d.TotalCredit,
		PostedBy:       d.PostedBy,
		PostedAt:       d.PostedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:        m.EntryID,
		OrganizationID: m.OrganizationID,
		EntryNumber:    m.EntryNumber,
		EntryDate:      m.EntryDate,
		FiscalPeriodID: m.FiscalPeriodID,
		Description:    m.Description,
		Reference:      m.Reference,
		SourceModule:   m.SourceModule,
		SourceID:       m.SourceID,
		EntryType:      domain.EntryType(m.EntryType),
		Status:         domain.EntryStatus(m.Status),
		TotalDebit:     m.TotalDebit,
		TotalCredit:    m.TotalCredit,
		PostedBy:       m.PostedBy,
		PostedAt:       m.PostedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine.
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:       d.LineID,
		EntryID:      d.EntryID,
		AccountID:    d.AccountID,
		Description:  d.Description,
		Debit:        d.Debit,
		Credit:       d.Credit,
		CurrencyCode: d.CurrencyCode,
		ExchangeRate: d.ExchangeRate,
		BaseDebit:    d.BaseDebit,
		BaseCredit:   d.BaseCredit,
		ContactID:    d.ContactID,
		ProjectID:    d.ProjectID,
		CostCenterID: d.CostCenterID,
		LineNumber:   d.LineNumber,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:       m.LineID,
		EntryID:      m.EntryID,
		AccountID:    m.AccountID,
		Description:  m.Description,
		Debit:        m.Debit,
		Credit:       m.Credit,
		CurrencyCode: m.CurrencyCode,
		ExchangeRate: m.ExchangeRate,
		BaseDebit:    m.BaseDebit,
		BaseCredit:   m.BaseCredit,
		ContactID:    m.ContactID,
		ProjectID:    m.ProjectID,
		CostCenterID: m.CostCenterID,
		LineNumber:   m.LineNumber,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalLineSlice converts a slice of model JournalLines to domain JournalLines.
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
