package repositories

import (
	"context"
	"time"

	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryReader defines read operations for journal entry data.
type EntryReader interface {
	// FindEntryByID retrieves a journal entry header by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves all lines of an entry ordered by line number.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// ListEntriesByOrganization retrieves a paginated list of entries using
	// token-based pagination. It returns the entries, a token for the next
	// page, and an error.
	ListEntriesByOrganization(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// EntryWriter defines write operations for journal entry data.
type EntryWriter interface {
	// SaveDraftEntry persists a new draft entry with its lines in one DB
	// transaction. When entry.EntryNumber is zero, the next value of the
	// organization's entry-number counter is allocated atomically and
	// returned; allocated numbers are never reused.
	SaveDraftEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (int64, error)

	// UpdateDraftEntry updates an entry's header and, when replaceLines is
	// set, replaces its lines. The update is guarded on status DRAFT and
	// fails with ErrInvalidState otherwise.
	UpdateDraftEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, replaceLines bool) error

	// DeleteDraftEntry deletes an entry and its lines, guarded on status DRAFT.
	DeleteDraftEntry(ctx context.Context, entryID string) error

	// MarkEntryPosted flips the entry to POSTED and applies every per-account
	// balance delta, all inside one DB transaction. The status flip is guarded
	// on the current status being DRAFT so a concurrent post or void loses
	// with ErrInvalidState. A delta for an unknown account aborts the whole
	// transaction with ErrAccountNotFound.
	MarkEntryPosted(ctx context.Context, entryID string, actorID string, deltas map[string]decimal.Decimal, now time.Time) error

	// MarkEntryVoided flips the entry to VOIDED and applies the inverse
	// balance deltas, guarded on the current status being POSTED.
	MarkEntryVoided(ctx context.Context, entryID string, actorID string, deltas map[string]decimal.Decimal, now time.Time) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	EntryReader
	EntryWriter
}
