package accounting_test

import (
	"testing"

	"github.com/ledgerhouse/general_ledger_app/internal/core/domain"
	"github.com/ledgerhouse/general_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseLine(accountID string, debit, credit int64) domain.JournalLine {
	return domain.JournalLine{
		AccountID:    accountID,
		Debit:        decimal.NewFromInt(debit),
		Credit:       decimal.NewFromInt(credit),
		ExchangeRate: decimal.NewFromInt(1),
		BaseDebit:    decimal.NewFromInt(debit),
		BaseCredit:   decimal.NewFromInt(credit),
		LineNumber:   1,
	}
}

func TestBalanceDelta(t *testing.T) {
	tests := []struct {
		name        string
		line        domain.JournalLine
		accountType domain.AccountType
		want        int64
	}{
		{"debit increases asset", baseLine("cash", 100, 0), domain.Asset, 100},
		{"credit decreases asset", baseLine("cash", 0, 40), domain.Asset, -40},
		{"debit increases expense", baseLine("rent", 75, 0), domain.Expense, 75},
		{"credit increases liability", baseLine("loan", 0, 200), domain.Liability, 200},
		{"debit decreases liability", baseLine("loan", 60, 0), domain.Liability, -60},
		{"credit increases revenue", baseLine("sales", 0, 100), domain.Revenue, 100},
		{"credit increases equity", baseLine("capital", 0, 500), domain.Equity, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.BalanceDelta(tt.line, tt.accountType)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s, want %d", got, tt.want)
		})
	}
}

func TestBalanceDelta_UnknownAccountType(t *testing.T) {
	_, err := accounting.BalanceDelta(baseLine("x", 100, 0), domain.AccountType("BOGUS"))
	assert.Error(t, err)
}

func TestBalanceDelta_UsesBaseAmounts(t *testing.T) {
	// A 100 EUR debit at 1.1 moves the base-currency balance by 110
	l := baseLine("cash", 100, 0)
	l.CurrencyCode = "EUR"
	l.ExchangeRate = decimal.NewFromFloat(1.1)
	l.BaseDebit = decimal.NewFromInt(110)

	got, err := accounting.BalanceDelta(l, domain.Asset)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(110)))
}

func TestSumBalanceDeltas(t *testing.T) {
	lines := []domain.JournalLine{
		baseLine("cash", 100, 0),
		baseLine("cash", 0, 30), // Second line on the same account aggregates
		baseLine("sales", 0, 70),
	}
	types := map[string]domain.AccountType{
		"cash":  domain.Asset,
		"sales": domain.Revenue,
	}

	deltas, err := accounting.SumBalanceDeltas(lines, types)
	require.NoError(t, err)
	require.Len(t, deltas, 2)
	assert.True(t, deltas["cash"].Equal(decimal.NewFromInt(70)))
	assert.True(t, deltas["sales"].Equal(decimal.NewFromInt(70)))
}

func TestSumBalanceDeltas_MissingAccountType(t *testing.T) {
	lines := []domain.JournalLine{baseLine("orphan", 100, 0)}

	_, err := accounting.SumBalanceDeltas(lines, map[string]domain.AccountType{})
	assert.Error(t, err)
}

func TestInvertDeltas(t *testing.T) {
	deltas := map[string]decimal.Decimal{
		"cash":  decimal.NewFromInt(100),
		"sales": decimal.NewFromInt(-25),
	}

	inverted := accounting.InvertDeltas(deltas)

	assert.True(t, inverted["cash"].Equal(decimal.NewFromInt(-100)))
	assert.True(t, inverted["sales"].Equal(decimal.NewFromInt(25)))
	// Original is untouched
	assert.True(t, deltas["cash"].Equal(decimal.NewFromInt(100)))
}

func TestValidateEntryBalance(t *testing.T) {
	t.Run("balanced", func(t *testing.T) {
		lines := []domain.JournalLine{
			baseLine("cash", 100, 0),
			baseLine("sales", 0, 100),
		}
		assert.NoError(t, accounting.ValidateEntryBalance(lines))
	})

	t.Run("unbalanced", func(t *testing.T) {
		lines := []domain.JournalLine{
			baseLine("cash", 100, 0),
			baseLine("sales", 0, 90),
		}
		assert.Error(t, accounting.ValidateEntryBalance(lines))
	})

	t.Run("within tolerance", func(t *testing.T) {
		credit := baseLine("sales", 0, 0)
		credit.Credit = decimal.RequireFromString("99.99")
		credit.BaseCredit = credit.Credit
		lines := []domain.JournalLine{baseLine("cash", 100, 0), credit}
		assert.NoError(t, accounting.ValidateEntryBalance(lines))
	})
}
