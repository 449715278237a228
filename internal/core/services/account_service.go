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

// maxAccountDepth bounds the parent-chain walk so corrupt data cannot spin
// the cycle check forever.
const maxAccountDepth = 50

// accountService manages the chart of accounts.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	orgSvc      portssvc.OrganizationSvcFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, orgSvc portssvc.OrganizationSvcFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		orgSvc:      orgSvc,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// validateParentChain verifies the proposed parent exists in the organization
// and that attaching childID beneath it would not form a cycle. The walk
// follows parent pointers with a visited set so corrupt data is reported
// rather than looped on.
func (s *accountService) validateParentChain(ctx context.Context, organizationID string, parentID string, childID string) error {
	visited := make(map[string]struct{})
	currentID := parentID
	for depth := 0; currentID != ""; depth++ {
		if depth >= maxAccountDepth {
			return fmt.Errorf("%w: account hierarchy exceeds maximum depth %d", apperrors.ErrBusinessRule, maxAccountDepth)
		}
		if currentID == childID {
			return fmt.Errorf("%w: account %s cannot be its own ancestor", apperrors.ErrBusinessRule, childID)
		}
		if _, seen := visited[currentID]; seen {
			return fmt.Errorf("%w: cycle detected in account hierarchy at %s", apperrors.ErrBusinessRule, currentID)
		}
		visited[currentID] = struct{}{}

		ancestor, err := s.accountRepo.FindAccountByID(ctx, currentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: parent account %s", apperrors.ErrAccountNotFound, currentID)
			}
			return fmt.Errorf("failed to resolve parent account %s: %w", currentID, err)
		}
		if ancestor.OrganizationID != organizationID {
			return fmt.Errorf("%w: parent account %s", apperrors.ErrAccountNotFound, currentID)
		}
		currentID = ancestor.ParentAccountID
	}
	return nil
}

// CreateAccount adds an account to the organization's chart of accounts.
func (s *accountService) CreateAccount(ctx context.Context, organizationID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, req.AccountType)
	}

	org, err := s.orgSvc.GetOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	// Account codes are unique within an organization
	existing, err := s.accountRepo.FindAccountByCode(ctx, organizationID, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check account code uniqueness", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to check account code: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account code %q already exists", apperrors.ErrDuplicate, req.Code)
	}

	accountID := uuid.NewString()

	parentID := ""
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parentID = *req.ParentAccountID
		if err := s.validateParentChain(ctx, organizationID, parentID, accountID); err != nil {
			return nil, err
		}
	}

	currencyCode := org.BaseCurrencyCode
	if req.CurrencyCode != nil && *req.CurrencyCode != "" {
		currencyCode = *req.CurrencyCode
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:       accountID,
		OrganizationID:  organizationID,
		Code:            req.Code,
		Name:            req.Name,
		AccountType:     req.AccountType,
		SubType:         req.SubType,
		CurrencyCode:    currencyCode,
		ParentAccountID: parentID,
		Description:     req.Description,
		IsSystem:        req.IsSystem,
		IsActive:        true,
		Balance:         decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("organization_id", organizationID), slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created successfully", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID retrieves an account scoped to the organization. An account
// of another organization is reported as not found rather than forbidden.
func (s *accountService) GetAccountByID(ctx context.Context, organizationID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	if account.OrganizationID != organizationID {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountNotFound, accountID)
	}
	return account, nil
}

// GetAccountsByIDs retrieves multiple accounts scoped to the organization.
// Accounts belonging to other organizations are dropped from the result.
func (s *accountService) GetAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find accounts: %w", err)
	}
	for id, acc := range accounts {
		if acc.OrganizationID != organizationID {
			delete(accounts, id)
		}
	}
	return accounts, nil
}

// ListAccounts retrieves a paginated list of the organization's accounts.
func (s *accountService) ListAccounts(ctx context.Context, organizationID string, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, organizationID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount edits account metadata. The running balance is never touched
// here; only the posting engine mutates it.
func (s *accountService) UpdateAccount(ctx context.Context, organizationID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, organizationID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.SubType != nil {
		account.SubType = *req.SubType
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.LogInfo(ctx, "Account updated successfully", slog.String("account_id", accountID))
	return account, nil
}

// DeactivateAccount soft-disables an account. Deactivated accounts keep their
// balance and history but reject new journal lines.
func (s *accountService) DeactivateAccount(ctx context.Context, organizationID string, accountID string, userID string) error {
	account, err := s.GetAccountByID(ctx, organizationID, accountID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return nil // already inactive
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}

// DeleteAccount removes an account. System accounts and accounts referenced
// by any journal line are protected; deactivate those instead.
func (s *accountService) DeleteAccount(ctx context.Context, organizationID string, accountID string, userID string) error {
	account, err := s.GetAccountByID(ctx, organizationID, accountID)
	if err != nil {
		return err
	}
	if account.IsSystem {
		return fmt.Errorf("%w: system account %s cannot be deleted", apperrors.ErrBusinessRule, accountID)
	}

	referenced, err := s.accountRepo.HasJournalLines(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check journal line references", slog.String("account_id", accountID))
		return fmt.Errorf("failed to check account usage: %w", err)
	}
	if referenced {
		return fmt.Errorf("%w: account %s has journal activity and cannot be deleted", apperrors.ErrBusinessRule, accountID)
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID), slog.String("deleted_by", userID))
	return nil
}
