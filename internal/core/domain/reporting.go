package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single account in a trial balance report. The
// account's net activity lands in exactly one of the two columns.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceReport lists every account's net debit or credit balance. The
// two column totals must always be equal; that is the fundamental correctness
// check of the ledger.
type TrialBalanceReport struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// GeneralLedgerLine is one posted journal line in an account's ledger detail,
// with the running balance after the line was applied.
type GeneralLedgerLine struct {
	EntryID          string          `json:"entryID"`
	EntryNumber      int64           `json:"entryNumber"`
	EntryDate        time.Time       `json:"entryDate"`
	EntryDescription string          `json:"entryDescription"`
	LineDescription  string          `json:"lineDescription"`
	Debit            decimal.Decimal `json:"debit"`  // Base-currency debit
	Credit           decimal.Decimal `json:"credit"` // Base-currency credit
	RunningBalance   decimal.Decimal `json:"runningBalance"`
}

// GeneralLedgerReport is the chronological posted activity of one account.
type GeneralLedgerReport struct {
	AccountID      string              `json:"accountID"`
	OpeningBalance decimal.Decimal     `json:"openingBalance"`
	ClosingBalance decimal.Decimal     `json:"closingBalance"`
	Lines          []GeneralLedgerLine `json:"lines"`
}

// AccountAmount represents an account with its net amount for financial reports.
type AccountAmount struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	NetAmount   decimal.Decimal `json:"netAmount"`
}

// PAndLReport represents a profit and loss report.
type PAndLReport struct {
	Revenue       []AccountAmount `json:"revenue"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"` // TotalRevenue - TotalExpenses
}

// BalanceSheetReport represents a balance sheet as of a date. Once all history
// is posted correctly, TotalAssets == TotalLiabilities + TotalEquity.
type BalanceSheetReport struct {
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}
