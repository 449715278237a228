package dto

import "time"

// TrialBalanceParams defines query parameters for the trial balance report.
type TrialBalanceParams struct {
	PeriodID *string `form:"periodID"`
}

// GeneralLedgerParams defines query parameters for the general ledger report.
type GeneralLedgerParams struct {
	From           time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To             time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
	OpeningBalance *string   `form:"openingBalance"` // Decimal string; zero when omitted
}

// DateRangeParams defines query parameters for range reports (P&L).
type DateRangeParams struct {
	From time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}

// AsOfParams defines query parameters for point-in-time reports (balance sheet).
type AsOfParams struct {
	AsOf time.Time `form:"asOf" time_format:"2006-01-02" binding:"required"`
}
