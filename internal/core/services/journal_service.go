package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerhouse/general_ledger_app/internal/apperrors"
	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	portsrepo "github.com/ledgerhouse/general_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerhouse/general_ledger_app/internal/core/ports/services"
	"github.com/ledgerhouse/general_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// journalService manages the draft lifecycle of journal entries. Posting and
// voiding live in postingService; this service never touches balances.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
	fiscalSvc   portssvc.FiscalSvcFacade
	orgSvc      portssvc.OrganizationSvcFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountSvcFacade, fiscalSvc portssvc.FiscalSvcFacade, orgSvc portssvc.OrganizationSvcFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
		fiscalSvc:   fiscalSvc,
		orgSvc:      orgSvc,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// buildLines converts line requests into domain lines, applying the currency
// defaults: currency falls back to the organization base currency, exchange
// rate to 1, and base amounts to debit/credit scaled by the exchange rate.
func (s *journalService) buildLines(entryID string, reqs []dto.CreateJournalLineRequest, baseCurrency string, creatorUserID string, now time.Time) ([]domain.JournalLine, error) {
	lines := make([]domain.JournalLine, len(reqs))
	for i, lineReq := range reqs {
		currency := baseCurrency
		if lineReq.CurrencyCode != nil && *lineReq.CurrencyCode != "" {
			currency = *lineReq.CurrencyCode
		}

		rate := decimal.NewFromInt(1)
		if lineReq.ExchangeRate != nil {
			rate = *lineReq.ExchangeRate
		} else if currency != baseCurrency {
			return nil, fmt.Errorf("%w: line %d: exchange rate is required for currency %s", apperrors.ErrValidation, i+1, currency)
		}

		baseDebit := lineReq.Debit.Mul(rate)
		if lineReq.BaseDebit != nil {
			baseDebit = *lineReq.BaseDebit
		}
		baseCredit := lineReq.Credit.Mul(rate)
		if lineReq.BaseCredit != nil {
			baseCredit = *lineReq.BaseCredit
		}

		line := domain.JournalLine{
			LineID:       uuid.NewString(),
			EntryID:      entryID,
			AccountID:    lineReq.AccountID,
			Description:  lineReq.Description,
			Debit:        lineReq.Debit,
			Credit:       lineReq.Credit,
			CurrencyCode: currency,
			ExchangeRate: rate,
			BaseDebit:    baseDebit,
			BaseCredit:   baseCredit,
			ContactID:    lineReq.ContactID,
			ProjectID:    lineReq.ProjectID,
			CostCenterID: lineReq.CostCenterID,
			LineNumber:   i + 1,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
		if err := line.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
		lines[i] = line
	}
	return lines, nil
}

// validateLineAccounts checks that every referenced account exists in the
// organization and is active.
func (s *journalService) validateLineAccounts(ctx context.Context, organizationID string, lines []domain.JournalLine) error {
	accountIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		accountIDs = append(accountIDs, line.AccountID)
	}
	uniqueIDs := uniqueStrings(accountIDs)

	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, organizationID, uniqueIDs)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range uniqueIDs {
		acc, found := accounts[id]
		if !found {
			return fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, id)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
	}
	return nil
}

// deriveTotals computes the entry totals from its lines and, when the caller
// supplied totals, cross-checks them within domain.BalanceTolerance.
func deriveTotals(lines []domain.JournalLine, claimedDebit, claimedCredit *decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	debitSum := decimal.Zero
	creditSum := decimal.Zero
	for _, line := range lines {
		debitSum = debitSum.Add(line.Debit)
		creditSum = creditSum.Add(line.Credit)
	}
	if claimedDebit != nil && !claimedDebit.Sub(debitSum).Abs().LessThanOrEqual(domain.BalanceTolerance) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: declared total debit %s does not match line sum %s", apperrors.ErrValidation, claimedDebit, debitSum)
	}
	if claimedCredit != nil && !claimedCredit.Sub(creditSum).Abs().LessThanOrEqual(domain.BalanceTolerance) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: declared total credit %s does not match line sum %s", apperrors.ErrValidation, claimedCredit, creditSum)
	}
	if !debitSum.Sub(creditSum).Abs().LessThanOrEqual(domain.BalanceTolerance) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: entry does not balance: debits %s, credits %s", apperrors.ErrValidation, debitSum, creditSum)
	}
	return debitSum, creditSum, nil
}

// resolvePeriod resolves the fiscal period for an entry date. An explicitly
// supplied period must exist, belong to the organization, be open, and
// contain the date; otherwise the unique open period for the date is used.
func (s *journalService) resolvePeriod(ctx context.Context, organizationID string, periodID *string, entryDate time.Time) (*domain.FiscalPeriod, error) {
	if periodID != nil && *periodID != "" {
		period, err := s.fiscalSvc.GetPeriodByID(ctx, organizationID, *periodID)
		if err != nil {
			return nil, err
		}
		if period.Status != domain.PeriodOpen {
			return nil, fmt.Errorf("%w: period %s is closed", apperrors.ErrNoOpenPeriod, period.PeriodID)
		}
		if !period.Contains(entryDate) {
			return nil, fmt.Errorf("%w: entry date %s is outside period %s", apperrors.ErrValidation, entryDate.Format("2006-01-02"), period.Name)
		}
		return period, nil
	}
	return s.fiscalSvc.FindPeriodForDate(ctx, organizationID, entryDate)
}

// CreateDraftEntry validates and persists a new draft journal entry. The
// entry number is allocated from the organization's counter unless the caller
// supplies one (migration imports do).
func (s *journalService) CreateDraftEntry(ctx context.Context, organizationID string, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	if len(req.Lines) < 2 {
		return nil, fmt.Errorf("%w: entry must have at least two lines", apperrors.ErrValidation)
	}
	if req.Description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}

	org, err := s.orgSvc.GetOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	entryType := req.EntryType
	if entryType == "" {
		entryType = domain.Standard
	}
	if !entryType.IsValid() {
		return nil, fmt.Errorf("%w: invalid entry type %q", apperrors.ErrValidation, entryType)
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	lines, err := s.buildLines(entryID, req.Lines, org.BaseCurrencyCode, creatorUserID, now)
	if err != nil {
		return nil, err
	}

	totalDebit, totalCredit, err := deriveTotals(lines, req.TotalDebit, req.TotalCredit)
	if err != nil {
		return nil, err
	}

	if err := s.validateLineAccounts(ctx, organizationID, lines); err != nil {
		return nil, err
	}

	period, err := s.resolvePeriod(ctx, organizationID, req.FiscalPeriodID, req.EntryDate)
	if err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		EntryID:        entryID,
		OrganizationID: organizationID,
		EntryDate:      req.EntryDate,
		FiscalPeriodID: period.PeriodID,
		Description:    req.Description,
		Reference:      req.Reference,
		SourceModule:   req.SourceModule,
		SourceID:       req.SourceID,
		EntryType:      entryType,
		Status:         domain.Draft,
		TotalDebit:     totalDebit,
		TotalCredit:    totalCredit,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.EntryNumber != nil {
		entry.EntryNumber = *req.EntryNumber
	}

	entryNumber, err := s.journalRepo.SaveDraftEntry(ctx, entry, lines)
	if err != nil {
		s.LogError(ctx, err, "Failed to save draft entry", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to save draft entry: %w", err)
	}
	entry.EntryNumber = entryNumber
	entry.Lines = lines

	s.LogInfo(ctx, "Draft entry created", slog.String("entry_id", entry.EntryID), slog.Int64("entry_number", entryNumber))
	return &entry, nil
}

// UpdateDraftEntry edits a draft entry. Any edit that changes the lines, the
// totals, or the date re-runs the full balance and period validation.
func (s *journalService) UpdateDraftEntry(ctx context.Context, organizationID string, entryID string, req dto.UpdateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	entry, err := s.GetEntryByID(ctx, organizationID, entryID)
	if err != nil {
		return nil, err
	}
	if !entry.IsEditable() {
		return nil, fmt.Errorf("%w: entry %s is %s and cannot be edited", apperrors.ErrInvalidState, entryID, entry.Status)
	}

	org, err := s.orgSvc.GetOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	if req.EntryDate != nil {
		entry.EntryDate = *req.EntryDate
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
		}
		entry.Description = *req.Description
	}
	if req.Reference != nil {
		entry.Reference = *req.Reference
	}

	replaceLines := req.Lines != nil
	lines := entry.Lines
	if replaceLines {
		lines, err = s.buildLines(entryID, req.Lines, org.BaseCurrencyCode, userID, now)
		if err != nil {
			return nil, err
		}
		if err := s.validateLineAccounts(ctx, organizationID, lines); err != nil {
			return nil, err
		}
	}

	claimedDebit, claimedCredit := req.TotalDebit, req.TotalCredit
	if claimedDebit == nil && !replaceLines {
		claimedDebit = &entry.TotalDebit
	}
	if claimedCredit == nil && !replaceLines {
		claimedCredit = &entry.TotalCredit
	}
	totalDebit, totalCredit, err := deriveTotals(lines, claimedDebit, claimedCredit)
	if err != nil {
		return nil, err
	}
	entry.TotalDebit = totalDebit
	entry.TotalCredit = totalCredit

	// The date may have moved to a different period
	period, err := s.resolvePeriod(ctx, organizationID, nil, entry.EntryDate)
	if err != nil {
		return nil, err
	}
	entry.FiscalPeriodID = period.PeriodID

	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	if err := s.journalRepo.UpdateDraftEntry(ctx, *entry, lines, replaceLines); err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			return nil, fmt.Errorf("%w: entry %s is no longer a draft", apperrors.ErrInvalidState, entryID)
		}
		s.LogError(ctx, err, "Failed to update draft entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update draft entry: %w", err)
	}
	entry.Lines = lines

	s.LogInfo(ctx, "Draft entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

// DeleteDraftEntry removes a draft entry and its lines. Posted and voided
// entries are immutable history and cannot be deleted.
func (s *journalService) DeleteDraftEntry(ctx context.Context, organizationID string, entryID string, userID string) error {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	if entry.OrganizationID != organizationID {
		return fmt.Errorf("%w: entry %s", apperrors.ErrNotFound, entryID)
	}
	if !entry.IsEditable() {
		return fmt.Errorf("%w: entry %s is %s and cannot be deleted", apperrors.ErrInvalidState, entryID, entry.Status)
	}

	if err := s.journalRepo.DeleteDraftEntry(ctx, entryID); err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			return fmt.Errorf("%w: entry %s is no longer a draft", apperrors.ErrInvalidState, entryID)
		}
		s.LogError(ctx, err, "Failed to delete draft entry", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete draft entry: %w", err)
	}

	s.LogInfo(ctx, "Draft entry deleted", slog.String("entry_id", entryID), slog.String("deleted_by", userID))
	return nil
}

// GetEntryByID retrieves an entry with its lines. Entries of other
// organizations are reported as not found.
func (s *journalService) GetEntryByID(ctx context.Context, organizationID string, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	if entry.OrganizationID != organizationID {
		return nil, fmt.Errorf("%w: entry %s", apperrors.ErrNotFound, entryID)
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch entry lines", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to fetch lines for entry %s: %w", entryID, err)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries retrieves a paginated list of the organization's entries,
// newest first, using token pagination.
func (s *journalService) ListEntries(ctx context.Context, organizationID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, nextToken, err := s.journalRepo.ListEntriesByOrganization(ctx, organizationID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	entryResponses := make([]dto.JournalEntryResponse, len(entries))
	for i := range entries {
		if params.IncludeLines {
			lines, err := s.journalRepo.FindLinesByEntryID(ctx, entries[i].EntryID)
			if err != nil {
				s.LogError(ctx, err, "Failed to load lines for entry", slog.String("entry_id", entries[i].EntryID))
				return nil, fmt.Errorf("failed to load entry lines: %w", err)
			}
			entries[i].Lines = lines
		}
		entryResponses[i] = dto.ToJournalEntryResponse(&entries[i])
	}

	return &dto.ListEntriesResponse{
		Entries:   entryResponses,
		NextToken: nextToken,
	}, nil
}
