package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// NormalSide indicates whether an account's balance increases with debits or credits.
type NormalSide string

const (
	DebitNormal  NormalSide = "DEBIT"
	CreditNormal NormalSide = "CREDIT"
)

// NormalSide returns the side that increases balances of this account type.
// Assets and expenses are debit-normal; liabilities, equity and revenue are credit-normal.
func (t AccountType) NormalSide() NormalSide {
	switch t {
	case Asset, Expense:
		return DebitNormal
	default:
		return CreditNormal
	}
}

// IsValid reports whether t is one of the five supported account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents a node of an organization's chart of accounts.
// This is the primary representation used by services.
type Account struct {
	AccountID       string          `json:"accountID"`       // Primary key (UUID)
	OrganizationID  string          `json:"organizationID"`  // FK -> organizations.organization_id (Not Null)
	Code            string          `json:"code"`            // Unique per organization (e.g. "1000")
	Name            string          `json:"name"`            // User-defined name
	AccountType     AccountType     `json:"accountType"`     // ASSET, LIABILITY, etc.
	SubType         string          `json:"subType"`         // Free-form refinement (e.g. "current_asset")
	CurrencyCode    string          `json:"currencyCode"`    // Defaults to the organization base currency
	ParentAccountID string          `json:"parentAccountID"` // Nullable self reference; forms the account tree
	Description     string          `json:"description"`
	IsSystem        bool            `json:"isSystem"` // System accounts can never be deleted
	IsActive        bool            `json:"isActive"`
	Balance         decimal.Decimal `json:"balance"` // Running balance in base-currency units; mutated only by posting
	AuditFields
}
