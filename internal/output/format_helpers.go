package output

import (
	"math"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	wholeDollars = money.NewFormatter(0, ".", ",", "$", "$1")
	dollarCents  = money.GetCurrency(money.USD).Formatter()
	hundred      = decimal.NewFromInt(100)
)

// FormatCurrency formats a whole-unit amount as USD with thousands separators ($12,345).
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount float64) string {
	if s, ok := nonFinite(amount); ok {
		return s
	}
	return wholeDollars.Format(int64(math.Floor(amount + 0.5)))
}

// FormatCents formats an amount as USD with 2 decimals ($1,645.82).
func FormatCents(amount float64) string {
	if s, ok := nonFinite(amount); ok {
		return s
	}
	return dollarCents.Format(int64(math.Floor(amount*100 + 0.5)))
}

// FormatDecimal formats a stored record amount as USD with 2 decimals.
func FormatDecimal(amount decimal.Decimal) string {
	return dollarCents.Format(amount.Shift(2).Round(0).IntPart())
}

// FormatPercentage formats a fractional rate (0.04) as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string { return rate.Mul(hundred).StringFixed(2) + "%" }

// FormatShare formats an ownership fraction, e.g. 33.33%.
func FormatShare(share float64) string {
	return strconv.FormatFloat(share*100, 'f', 2, 64) + "%"
}

func nonFinite(v float64) (string, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}
	return "", false
}
