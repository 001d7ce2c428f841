package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/propeq/equity-dashboard/internal/domain"
	pkgdecimal "github.com/propeq/equity-dashboard/pkg/decimal"
	"github.com/propeq/equity-dashboard/pkg/dateutil"
)

// CurrentMonthTotal sums the signed amounts of transactions dated in asOf's calendar month
func CurrentMonthTotal(transactions []domain.Transaction, asOf time.Time) pkgdecimal.Money {
	amounts := make([]decimal.Decimal, 0, len(transactions))
	for _, t := range transactions {
		if dateutil.SameMonth(t.Date, asOf) {
			amounts = append(amounts, t.Amount)
		}
	}
	return pkgdecimal.Sum(amounts...)
}

// RunningTotal sums the signed amounts of every transaction
func RunningTotal(transactions []domain.Transaction) pkgdecimal.Money {
	amounts := make([]decimal.Decimal, len(transactions))
	for i, t := range transactions {
		amounts[i] = t.Amount
	}
	return pkgdecimal.Sum(amounts...)
}

// BuildSummaryCards computes the four headline figures for one partner share.
// Equity and its monthly delta come from the base annual series.
func BuildSummaryCards(annual []domain.AnnualPoint, transactions []domain.Transaction, share float64, asOf time.Time) domain.SummaryCards {
	var cards domain.SummaryCards
	if len(annual) > 0 {
		cards.Equity = ApplyShare(annual[0].Equity, share)
	}
	if len(annual) > 2 {
		cards.EquityDeltaMonthly = roundWhole((annual[2].Equity - annual[1].Equity) * share / 12)
	}

	shareDec := decimal.NewFromFloat(share)
	cards.MonthCashFlow = CurrentMonthTotal(transactions, asOf).Share(shareDec).Whole().Float()
	cards.RunningBalance = RunningTotal(transactions).Share(shareDec).Whole().Float()
	return cards
}
