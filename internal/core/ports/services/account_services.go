package services

import (
	"context"

	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	"github.com/ledgerhouse/general_ledger_app/internal/dto"
)

// AccountSvcFacade exposes chart-of-accounts operations.
type AccountSvcFacade interface {
	// CreateAccount adds an account to the organization's chart of accounts.
	CreateAccount(ctx context.Context, organizationID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)

	// GetAccountByID retrieves an account scoped to the organization.
	GetAccountByID(ctx context.Context, organizationID string, accountID string) (*domain.Account, error)

	// GetAccountsByIDs retrieves multiple accounts scoped to the organization.
	GetAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a paginated list of the organization's accounts.
	ListAccounts(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Account, error)

	// UpdateAccount edits account metadata (name, description, tags). It never
	// touches the running balance.
	UpdateAccount(ctx context.Context, organizationID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeactivateAccount soft-disables an account for new journal lines.
	DeactivateAccount(ctx context.Context, organizationID string, accountID string, userID string) error

	// DeleteAccount removes an account. Rejected with ErrBusinessRule for
	// system accounts and for accounts referenced by any journal line.
	DeleteAccount(ctx context.Context, organizationID string, accountID string, userID string) error
}
