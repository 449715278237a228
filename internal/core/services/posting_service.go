package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ledgerhouse/general_ledger_app/internal/apperrors"
	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	portsrepo "github.com/ledgerhouse/general_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerhouse/general_ledger_app/internal/core/ports/services"
	"github.com/ledgerhouse/general_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// postingService is the posting engine. It is the only component allowed to
// mutate account balances, and it only ever does so through the repository's
// single-transaction MarkEntryPosted/MarkEntryVoided operations.
type postingService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
	fiscalSvc   portssvc.FiscalSvcFacade
	journalSvc  portssvc.JournalSvcFacade
}

// NewPostingService creates a new PostingService.
func NewPostingService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountSvcFacade, fiscalSvc portssvc.FiscalSvcFacade, journalSvc portssvc.JournalSvcFacade) portssvc.PostingSvcFacade {
	return &postingService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
		fiscalSvc:   fiscalSvc,
		journalSvc:  journalSvc,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// computeDeltas resolves the account types of every line and aggregates the
// per-account signed balance changes of the entry.
func (s *postingService) computeDeltas(ctx context.Context, organizationID string, lines []domain.JournalLine) (map[string]decimal.Decimal, error) {
	accountIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		accountIDs = append(accountIDs, line.AccountID)
	}
	uniqueIDs := uniqueStrings(accountIDs)

	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, organizationID, uniqueIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	accountTypes := make(map[string]domain.AccountType, len(uniqueIDs))
	for _, id := range uniqueIDs {
		acc, found := accounts[id]
		if !found {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, id)
		}
		accountTypes[id] = acc.AccountType
	}

	deltas, err := accounting.SumBalanceDeltas(lines, accountTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to compute balance deltas: %w", err)
	}
	return deltas, nil
}

// PostEntry transitions a draft entry to POSTED and applies its balance
// effect. The status flip and every balance increment happen in one DB
// transaction; a concurrent post or void of the same entry loses with
// ErrInvalidState and no balance is touched twice.
func (s *postingService) PostEntry(ctx context.Context, organizationID string, entryID string, actorUserID string) (*domain.JournalEntry, error) {
	entry, err := s.journalSvc.GetEntryByID(ctx, organizationID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.Draft {
		return nil, fmt.Errorf("%w: entry %s is %s, only drafts can be posted", apperrors.ErrInvalidState, entryID, entry.Status)
	}

	// The entry is re-validated at posting time: drafts may have been edited
	// since creation, and only balanced entries may ever reach the ledger.
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	// The entry's period must still be open
	period, err := s.fiscalSvc.GetPeriodByID(ctx, organizationID, entry.FiscalPeriodID)
	if err != nil {
		return nil, err
	}
	if period.Status != domain.PeriodOpen {
		return nil, fmt.Errorf("%w: period %s is closed", apperrors.ErrNoOpenPeriod, period.PeriodID)
	}

	deltas, err := s.computeDeltas(ctx, organizationID, entry.Lines)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.journalRepo.MarkEntryPosted(ctx, entryID, actorUserID, deltas, now); err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			return nil, fmt.Errorf("%w: entry %s was posted or voided concurrently", apperrors.ErrInvalidState, entryID)
		}
		s.LogError(ctx, err, "Failed to post entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to post entry %s: %w", entryID, err)
	}

	entry.Status = domain.Posted
	entry.PostedBy = &actorUserID
	entry.PostedAt = &now
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actorUserID

	s.LogInfo(ctx, "Entry posted", slog.String("entry_id", entryID), slog.Int64("entry_number", entry.EntryNumber), slog.Int("line_count", len(entry.Lines)))
	return entry, nil
}

// VoidEntry reverses a posted entry's balance effect and marks it VOIDED.
// The entry and its lines are retained as history; VOIDED is terminal and the
// entry number is never reused.
func (s *postingService) VoidEntry(ctx context.Context, organizationID string, entryID string, actorUserID string) (*domain.JournalEntry, error) {
	entry, err := s.journalSvc.GetEntryByID(ctx, organizationID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.Posted {
		return nil, fmt.Errorf("%w: entry %s is %s, only posted entries can be voided", apperrors.ErrInvalidState, entryID, entry.Status)
	}

	deltas, err := s.computeDeltas(ctx, organizationID, entry.Lines)
	if err != nil {
		return nil, err
	}
	inverse := accounting.InvertDeltas(deltas)

	now := time.Now().UTC()
	if err := s.journalRepo.MarkEntryVoided(ctx, entryID, actorUserID, inverse, now); err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			return nil, fmt.Errorf("%w: entry %s was modified concurrently", apperrors.ErrInvalidState, entryID)
		}
		s.LogError(ctx, err, "Failed to void entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to void entry %s: %w", entryID, err)
	}

	entry.Status = domain.Voided
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actorUserID

	s.LogInfo(ctx, "Entry voided", slog.String("entry_id", entryID), slog.Int64("entry_number", entry.EntryNumber))
	return entry, nil
}
