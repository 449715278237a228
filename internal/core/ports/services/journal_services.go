package services

import (
	"context"

	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	"github.com/ledgerhouse/general_ledger_app/internal/dto"
)

// JournalSvcFacade exposes the journal store: draft lifecycle and reads.
// Posting and voiding live on PostingSvcFacade.
type JournalSvcFacade interface {
	// CreateDraftEntry validates and persists a new draft journal entry.
	CreateDraftEntry(ctx context.Context, organizationID string, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	// UpdateDraftEntry edits a draft entry. Fails with ErrInvalidState for any
	// other status; re-validates balance when lines or totals change.
	UpdateDraftEntry(ctx context.Context, organizationID string, entryID string, req dto.UpdateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// DeleteDraftEntry removes a draft entry. Fails with ErrInvalidState for
	// any other status.
	DeleteDraftEntry(ctx context.Context, organizationID string, entryID string, userID string) error

	// GetEntryByID retrieves an entry with its lines.
	GetEntryByID(ctx context.Context, organizationID string, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of the organization's entries.
	ListEntries(ctx context.Context, organizationID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// PostingSvcFacade is the posting engine: the only component permitted to
// mutate account balances.
type PostingSvcFacade interface {
	// PostEntry transitions a draft entry to POSTED and applies its balance
	// effect atomically.
	PostEntry(ctx context.Context, organizationID string, entryID string, actorUserID string) (*domain.JournalEntry, error)

	// VoidEntry reverses a posted entry's balance effect and marks it VOIDED.
	// The entry and its history are retained; VOIDED is terminal.
	VoidEntry(ctx context.Context, organizationID string, entryID string, actorUserID string) (*domain.JournalEntry, error)
}
