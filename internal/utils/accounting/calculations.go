package accounting

import (
	"fmt"

	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceDelta computes the signed change a journal line applies to its
// account's running balance, in base-currency units.
// This is used in both services and repositories so the accounting convention
// lives in one place:
//
//	debit-normal account (ASSET/EXPENSE):        +baseDebit - baseCredit
//	credit-normal account (LIABILITY/EQUITY/REVENUE): +baseCredit - baseDebit
func BalanceDelta(line domain.JournalLine, accountType domain.AccountType) (decimal.Decimal, error) {
	if !accountType.IsValid() {
		return decimal.Zero, fmt.Errorf("unknown account type %q for account %s", accountType, line.AccountID)
	}
	if accountType.NormalSide() == domain.DebitNormal {
		return line.BaseDebit.Sub(line.BaseCredit), nil
	}
	return line.BaseCredit.Sub(line.BaseDebit), nil
}

// SumBalanceDeltas aggregates per-account signed balance changes for a set of
// lines. The caller supplies the account type for every referenced account.
func SumBalanceDeltas(lines []domain.JournalLine, accountTypes map[string]domain.AccountType) (map[string]decimal.Decimal, error) {
	deltas := make(map[string]decimal.Decimal, len(lines))
	for _, line := range lines {
		accountType, ok := accountTypes[line.AccountID]
		if !ok {
			return nil, fmt.Errorf("account type not found for account %s", line.AccountID)
		}
		delta, err := BalanceDelta(line, accountType)
		if err != nil {
			return nil, err
		}
		deltas[line.AccountID] = deltas[line.AccountID].Add(delta)
	}
	return deltas, nil
}

// InvertDeltas negates every per-account delta. Voiding an entry applies the
// exact inverse of the adjustments posting applied.
func InvertDeltas(deltas map[string]decimal.Decimal) map[string]decimal.Decimal {
	inverted := make(map[string]decimal.Decimal, len(deltas))
	for accountID, delta := range deltas {
		inverted[accountID] = delta.Neg()
	}
	return inverted
}

// ValidateEntryBalance checks that the line debit and credit sums agree within
// domain.BalanceTolerance. Callers that also track stored totals should use
// domain.JournalEntry.Validate, which cross-checks those too.
func ValidateEntryBalance(lines []domain.JournalLine) error {
	debitSum := decimal.Zero
	creditSum := decimal.Zero
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		debitSum = debitSum.Add(line.Debit)
		creditSum = creditSum.Add(line.Credit)
	}
	if !debitSum.Sub(creditSum).Abs().LessThanOrEqual(domain.BalanceTolerance) {
		return fmt.Errorf("debits (%s) and credits (%s) do not balance", debitSum, creditSum)
	}
	return nil
}
