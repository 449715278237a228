package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerhouse/general_ledger_app/internal/apperrors"
	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	portsrepo "github.com/ledgerhouse/general_ledger_app/internal/core/ports/repositories"
	"github.com/ledgerhouse/general_ledger_app/internal/models"
	"github.com/ledgerhouse/general_ledger_app/internal/utils/mapping"
	"github.com/ledgerhouse/general_ledger_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const entryColumns = `entry_id, organization_id, entry_number, entry_date, fiscal_period_id, description, reference, source_module, source_id, entry_type, status, total_debit, total_credit, posted_by, posted_at, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, account_id, description, debit, credit, currency_code, exchange_rate, base_debit, base_credit, contact_id, project_id, cost_center_id, line_number, created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalRepository struct {
	BaseRepository
	accountTx portsrepo.AccountTransactionSupport
}

// newPgxJournalRepository creates a new repository for journal entry data.
// Balance mutations on the posting path go through accountTx so the
// accounting convention lives in one place.
func newPgxJournalRepository(pool *pgxpool.Pool, accountTx portsrepo.AccountTransactionSupport) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountTx:      accountTx,
	}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func scanEntry(row rowScanner) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.OrganizationID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.FiscalPeriodID,
		&m.Description,
		&m.Reference,
		&m.SourceModule,
		&m.SourceID,
		&m.EntryType,
		&m.Status,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.PostedBy,
		&m.PostedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanLine(row rowScanner) (models.JournalLine, error) {
	var m models.JournalLine
	err := row.Scan(
		&m.LineID,
		&m.EntryID,
		&m.AccountID,
		&m.Description,
		&m.Debit,
		&m.Credit,
		&m.CurrencyCode,
		&m.ExchangeRate,
		&m.BaseDebit,
		&m.BaseCredit,
		&m.ContactID,
		&m.ProjectID,
		&m.CostCenterID,
		&m.LineNumber,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// nextEntryNumber allocates the next entry number of the organization inside
// the transaction. The counter row is seeded on first use; the UPDATE ...
// RETURNING increment serializes concurrent allocations on the row lock, so
// two transactions can never observe the same value.
func (r *PgxJournalRepository) nextEntryNumber(ctx context.Context, tx pgx.Tx, organizationID string) (int64, error) {
	seed := `
		INSERT INTO journal_entry_counters (organization_id, last_entry_number)
		VALUES ($1, 0)
		ON CONFLICT (organization_id) DO NOTHING;
	`
	if _, err := tx.Exec(ctx, seed, organizationID); err != nil {
		return 0, fmt.Errorf("failed to seed entry counter: %w", err)
	}

	query := `
		UPDATE journal_entry_counters
		SET last_entry_number = last_entry_number + 1
		WHERE organization_id = $1
		RETURNING last_entry_number;
	`
	var number int64
	if err := tx.QueryRow(ctx, query, organizationID).Scan(&number); err != nil {
		return 0, fmt.Errorf("failed to allocate entry number: %w", err)
	}
	return number, nil
}

func insertLines(ctx context.Context, tx pgx.Tx, lines []domain.JournalLine) error {
	query := `
		INSERT INTO journal_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		m := mapping.ToModelJournalLine(line)
		batch.Queue(query,
			m.LineID,
			m.EntryID,
			m.AccountID,
			m.Description,
			m.Debit,
			m.Credit,
			m.CurrencyCode,
			m.ExchangeRate,
			m.BaseDebit,
			m.BaseCredit,
			m.ContactID,
			m.ProjectID,
			m.CostCenterID,
			m.LineNumber,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range lines {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert journal line: %w", err)
		}
	}
	return nil
}

// reserveEntryNumber moves the counter past an explicitly supplied number so
// later allocations cannot collide with imported entries.
func (r *PgxJournalRepository) reserveEntryNumber(ctx context.Context, tx pgx.Tx, organizationID string, number int64) error {
	query := `
		INSERT INTO journal_entry_counters (organization_id, last_entry_number)
		VALUES ($1, $2)
		ON CONFLICT (organization_id) DO UPDATE
		SET last_entry_number = GREATEST(journal_entry_counters.last_entry_number, EXCLUDED.last_entry_number);
	`
	if _, err := tx.Exec(ctx, query, organizationID, number); err != nil {
		return fmt.Errorf("failed to reserve entry number %d: %w", number, err)
	}
	return nil
}

// SaveDraftEntry persists a new draft entry with its lines in one transaction.
// A zero entry number means "allocate the next one"; explicit numbers come
// from migration imports and advance the counter past themselves.
func (r *PgxJournalRepository) SaveDraftEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	entryNumber := entry.EntryNumber
	if entryNumber == 0 {
		entryNumber, err = r.nextEntryNumber(ctx, tx, entry.OrganizationID)
		if err != nil {
			return 0, err
		}
	} else if err := r.reserveEntryNumber(ctx, tx, entry.OrganizationID, entryNumber); err != nil {
		return 0, err
	}

	m := mapping.ToModelJournalEntry(entry)
	m.EntryNumber = entryNumber

	query := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err = tx.Exec(ctx, query,
		m.EntryID,
		m.OrganizationID,
		m.EntryNumber,
		m.EntryDate,
		m.FiscalPeriodID,
		m.Description,
		m.Reference,
		m.SourceModule,
		m.SourceID,
		m.EntryType,
		m.Status,
		m.TotalDebit,
		m.TotalCredit,
		m.PostedBy,
		m.PostedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return 0, fmt.Errorf("%w: entry number %d already exists in organization", apperrors.ErrDuplicate, m.EntryNumber)
		}
		return 0, fmt.Errorf("failed to insert journal entry %s: %w", m.EntryID, err)
	}

	if err := insertLines(ctx, tx, lines); err != nil {
		return 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return entryNumber, nil
}

// entryStatusError distinguishes "entry gone" from "entry no longer a draft"
// after a guarded update matched no rows.
func (r *PgxJournalRepository) entryStatusError(ctx context.Context, tx pgx.Tx, entryID string) error {
	var status models.EntryStatus
	err := tx.QueryRow(ctx, `SELECT status FROM journal_entries WHERE entry_id = $1;`, entryID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to check entry status for %s: %w", entryID, err)
	}
	return fmt.Errorf("%w: entry is %s", apperrors.ErrInvalidState, status)
}

// UpdateDraftEntry updates an entry's header and optionally replaces its
// lines. The UPDATE is guarded on status DRAFT; a concurrent post or void
// makes the guard miss and the whole transaction rolls back.
func (r *PgxJournalRepository) UpdateDraftEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, replaceLines bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	m := mapping.ToModelJournalEntry(entry)

	query := `
		UPDATE journal_entries
		SET entry_date = $2, fiscal_period_id = $3, description = $4, reference = $5, total_debit = $6, total_credit = $7, last_updated_at = $8, last_updated_by = $9
		WHERE entry_id = $1 AND status = 'DRAFT';
	`
	tag, err := tx.Exec(ctx, query,
		m.EntryID,
		m.EntryDate,
		m.FiscalPeriodID,
		m.Description,
		m.Reference,
		m.TotalDebit,
		m.TotalCredit,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal entry %s: %w", m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.entryStatusError(ctx, tx, m.EntryID)
	}

	if replaceLines {
		if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, m.EntryID); err != nil {
			return fmt.Errorf("failed to delete lines of entry %s: %w", m.EntryID, err)
		}
		if err := insertLines(ctx, tx, lines); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteDraftEntry deletes an entry and its lines, guarded on status DRAFT.
func (r *PgxJournalRepository) DeleteDraftEntry(ctx context.Context, entryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, entryID); err != nil {
		return fmt.Errorf("failed to delete lines of entry %s: %w", entryID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1 AND status = 'DRAFT';`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.entryStatusError(ctx, tx, entryID)
	}

	return r.Commit(ctx, tx)
}

// MarkEntryPosted flips the entry to POSTED and applies the balance deltas in
// one transaction. The status flip is the concurrency gate: of two racing
// posts exactly one sees status DRAFT, so the deltas are applied exactly once.
func (r *PgxJournalRepository) MarkEntryPosted(ctx context.Context, entryID string, actorID string, deltas map[string]decimal.Decimal, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	query := `
		UPDATE journal_entries
		SET status = 'POSTED', posted_by = $2, posted_at = $3, last_updated_at = $3, last_updated_by = $2
		WHERE entry_id = $1 AND status = 'DRAFT';
	`
	tag, err := tx.Exec(ctx, query, entryID, actorID, now)
	if err != nil {
		return fmt.Errorf("failed to mark entry %s posted: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.entryStatusError(ctx, tx, entryID)
	}

	if err := r.accountTx.ApplyBalanceDeltasInTx(ctx, tx, deltas, actorID, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// MarkEntryVoided flips the entry to VOIDED and applies the inverse balance
// deltas, guarded on the current status being POSTED.
func (r *PgxJournalRepository) MarkEntryVoided(ctx context.Context, entryID string, actorID string, deltas map[string]decimal.Decimal, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	query := `
		UPDATE journal_entries
		SET status = 'VOIDED', last_updated_at = $3, last_updated_by = $2
		WHERE entry_id = $1 AND status = 'POSTED';
	`
	tag, err := tx.Exec(ctx, query, entryID, actorID, now)
	if err != nil {
		return fmt.Errorf("failed to mark entry %s voided: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.entryStatusError(ctx, tx, entryID)
	}

	if err := r.accountTx.ApplyBalanceDeltasInTx(ctx, tx, deltas, actorID, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves a journal entry header by its ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}

	entry := mapping.ToDomainJournalEntry(m)
	return &entry, nil
}

// FindLinesByEntryID retrieves all lines of an entry ordered by line number.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `SELECT ` + lineColumns + ` FROM journal_lines WHERE entry_id = $1 ORDER BY line_number;`

	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines of entry %s: %w", entryID, err)
	}
	defer rows.Close()

	var lines []models.JournalLine
	for rows.Next() {
		m, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line: %w", err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal lines: %w", err)
	}
	return mapping.ToDomainJournalLineSlice(lines), nil
}

// ListEntriesByOrganization retrieves a page of entries ordered newest first
// using (entry_date, created_at, entry_id) token pagination. The entry id
// tiebreaker makes the ordering total, so rows sharing the boundary row's
// timestamps are never skipped.
func (r *PgxJournalRepository) ListEntriesByOrganization(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := []any{organizationID}
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE organization_id = $1`

	if nextToken != nil && *nextToken != "" {
		entryDate, createdAt, entryID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
		query += ` AND (entry_date, created_at, entry_id) < ($2, $3, $4)`
		args = append(args, entryDate, createdAt, entryID)
	}

	// Fetch one extra row to detect whether another page exists
	query += fmt.Sprintf(` ORDER BY entry_date DESC, created_at DESC, entry_id DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal entries: %w", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeToken(last.EntryDate, last.CreatedAt, last.EntryID)
		token = &t
	}

	result := make([]domain.JournalEntry, len(entries))
	for i, m := range entries {
		result[i] = mapping.ToDomainJournalEntry(m)
	}
	return result, token, nil
}
