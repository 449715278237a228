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
)

const periodColumns = `period_id, fiscal_year_id, organization_id, name, start_date, end_date, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxFiscalRepository struct {
	BaseRepository
}

// newPgxFiscalRepository creates a new repository for fiscal calendar data.
func newPgxFiscalRepository(pool *pgxpool.Pool) portsrepo.FiscalRepository {
	return &PgxFiscalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FiscalRepository = (*PgxFiscalRepository)(nil)

func scanPeriod(row rowScanner) (models.FiscalPeriod, error) {
	var m models.FiscalPeriod
	err := row.Scan(
		&m.PeriodID,
		&m.FiscalYearID,
		&m.OrganizationID,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveFiscalYear persists a fiscal year with its periods in one transaction.
func (r *PgxFiscalRepository) SaveFiscalYear(ctx context.Context, year domain.FiscalYear, periods []domain.FiscalPeriod) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	my := mapping.ToModelFiscalYear(year)

	yearQuery := `
		INSERT INTO fiscal_years (fiscal_year_id, organization_id, name, start_date, end_date, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, yearQuery,
		my.FiscalYearID,
		my.OrganizationID,
		my.Name,
		my.StartDate,
		my.EndDate,
		my.Status,
		my.CreatedAt,
		my.CreatedBy,
		my.LastUpdatedAt,
		my.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: fiscal year %s already exists", apperrors.ErrDuplicate, my.Name)
		}
		return fmt.Errorf("failed to insert fiscal year %s: %w", my.FiscalYearID, err)
	}

	periodQuery := `
		INSERT INTO fiscal_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	batch := &pgx.Batch{}
	for _, period := range periods {
		mp := mapping.ToModelFiscalPeriod(period)
		batch.Queue(periodQuery,
			mp.PeriodID,
			mp.FiscalYearID,
			mp.OrganizationID,
			mp.Name,
			mp.StartDate,
			mp.EndDate,
			mp.Status,
			mp.CreatedAt,
			mp.CreatedBy,
			mp.LastUpdatedAt,
			mp.LastUpdatedBy,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range periods {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to insert fiscal period: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close period batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindFiscalYearByID retrieves a fiscal year with its periods.
func (r *PgxFiscalRepository) FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error) {
	query := `
		SELECT fiscal_year_id, organization_id, name, start_date, end_date, status, created_at, created_by, last_updated_at, last_updated_by
		FROM fiscal_years
		WHERE fiscal_year_id = $1;
	`
	var m models.FiscalYear
	err := r.Pool.QueryRow(ctx, query, fiscalYearID).Scan(
		&m.FiscalYearID,
		&m.OrganizationID,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fiscal year %s: %w", fiscalYearID, err)
	}

	periods, err := r.findPeriodsByYearIDs(ctx, []string{fiscalYearID})
	if err != nil {
		return nil, err
	}

	year := mapping.ToDomainFiscalYear(m)
	year.Periods = mapping.ToDomainFiscalPeriodSlice(periods[fiscalYearID])
	return &year, nil
}

func (r *PgxFiscalRepository) findPeriodsByYearIDs(ctx context.Context, yearIDs []string) (map[string][]models.FiscalPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM fiscal_periods WHERE fiscal_year_id = ANY($1) ORDER BY start_date;`

	rows, err := r.Pool.Query(ctx, query, yearIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query fiscal periods: %w", err)
	}
	defer rows.Close()

	periodsByYear := make(map[string][]models.FiscalPeriod)
	for rows.Next() {
		m, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fiscal period: %w", err)
		}
		periodsByYear[m.FiscalYearID] = append(periodsByYear[m.FiscalYearID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fiscal periods: %w", err)
	}
	return periodsByYear, nil
}

// ListFiscalYearsByOrganization retrieves all fiscal years of an organization
// with their periods, ordered by start date.
func (r *PgxFiscalRepository) ListFiscalYearsByOrganization(ctx context.Context, organizationID string) ([]domain.FiscalYear, error) {
	query := `
		SELECT fiscal_year_id, organization_id, name, start_date, end_date, status, created_at, created_by, last_updated_at, last_updated_by
		FROM fiscal_years
		WHERE organization_id = $1
		ORDER BY start_date;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fiscal years: %w", err)
	}
	defer rows.Close()

	var yearModels []models.FiscalYear
	for rows.Next() {
		var m models.FiscalYear
		err := rows.Scan(
			&m.FiscalYearID,
			&m.OrganizationID,
			&m.Name,
			&m.StartDate,
			&m.EndDate,
			&m.Status,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fiscal year: %w", err)
		}
		yearModels = append(yearModels, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fiscal years: %w", err)
	}
	if len(yearModels) == 0 {
		return []domain.FiscalYear{}, nil
	}

	yearIDs := make([]string, len(yearModels))
	for i, m := range yearModels {
		yearIDs[i] = m.FiscalYearID
	}
	periodsByYear, err := r.findPeriodsByYearIDs(ctx, yearIDs)
	if err != nil {
		return nil, err
	}

	years := make([]domain.FiscalYear, len(yearModels))
	for i, m := range yearModels {
		year := mapping.ToDomainFiscalYear(m)
		year.Periods = mapping.ToDomainFiscalPeriodSlice(periodsByYear[m.FiscalYearID])
		years[i] = year
	}
	return years, nil
}

// FindPeriodByID retrieves a single fiscal period.
func (r *PgxFiscalRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.FiscalPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM fiscal_periods WHERE period_id = $1;`

	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find period %s: %w", periodID, err)
	}

	period := mapping.ToDomainFiscalPeriod(m)
	return &period, nil
}

// FindOpenPeriodForDate returns the unique open period whose window contains
// the date. Period windows never overlap, so at most one row matches.
func (r *PgxFiscalRepository) FindOpenPeriodForDate(ctx context.Context, organizationID string, date time.Time) (*domain.FiscalPeriod, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM fiscal_periods
		WHERE organization_id = $1 AND status = 'OPEN' AND start_date <= $2 AND end_date >= $2;
	`
	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, organizationID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find open period for date: %w", err)
	}

	period := mapping.ToDomainFiscalPeriod(m)
	return &period, nil
}

// HasOverlappingPeriods reports whether any existing period of the
// organization overlaps the [start, end] window.
func (r *PgxFiscalRepository) HasOverlappingPeriods(ctx context.Context, organizationID string, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM fiscal_periods
			WHERE organization_id = $1 AND start_date <= $3 AND end_date >= $2
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, organizationID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check period overlap: %w", err)
	}
	return exists, nil
}

// UpdatePeriodStatus transitions a period between OPEN and CLOSED.
func (r *PgxFiscalRepository) UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, userID string, now time.Time) error {
	query := `
		UPDATE fiscal_periods
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE period_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, periodID, models.PeriodStatus(status), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update period status for %s: %w", periodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
