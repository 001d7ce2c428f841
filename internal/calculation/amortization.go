package calculation

import (
	"math"
	"time"

	"github.com/propeq/equity-dashboard/internal/domain"
	"github.com/propeq/equity-dashboard/pkg/dateutil"
	pkgdecimal "github.com/propeq/equity-dashboard/pkg/decimal"
)

// MonthlyPayment returns the fixed principal-and-interest payment for a fully
// amortizing loan: P * r(1+r)^n / ((1+r)^n - 1) with r = annualRate/12 and
// n = termYears*12. Invalid input (zero rate or term) yields NaN or Inf.
func MonthlyPayment(principal, annualRate float64, termYears int) float64 {
	r := annualRate / 12
	n := float64(termYears * 12)
	growth := math.Pow(1+r, n)
	return principal * (r * growth) / (growth - 1)
}

// AmortizeWithPayment steps a balance forward month by month with a fixed
// payment. Returns 0 as soon as the balance reaches zero or below.
func AmortizeWithPayment(balance, monthlyRate, payment float64, months int) float64 {
	for m := 0; m < months; m++ {
		interest := balance * monthlyRate
		balance -= payment - interest
		if balance <= 0 {
			return 0
		}
	}
	return balance
}

// AmortizeBalance returns the unrounded remaining principal after the given
// number of scheduled payments on a loan of the given terms.
func AmortizeBalance(principal, annualRate float64, termYears, months int) float64 {
	payment := MonthlyPayment(principal, annualRate, termYears)
	return AmortizeWithPayment(principal, annualRate/12, payment, months)
}

// CalculateAmortizedBalance computes the balance on asOf from the origination
// facts, rounded to cents. Elapsed months never go below zero.
func CalculateAmortizedBalance(p domain.PropertyAssumptions, asOf time.Time) float64 {
	months := dateutil.MonthsElapsed(*p.LoanStartDate, asOf)
	if months < 0 {
		months = 0
	}
	balance := AmortizeBalance(p.OriginalLoanAmount.InexactFloat64(), p.InterestRate.InexactFloat64(), p.LoanTermYears, months)
	return roundCents(balance)
}

// ResolveLoanBalance picks the authoritative current loan balance and reports
// which source it came from. Without origination facts the latest override
// (or the stored balance) is used. With them, an override recorded in the
// evaluation month or later beats the amortized figure.
func ResolveLoanBalance(p domain.PropertyAssumptions, latest *domain.ValueOverride, asOf time.Time) domain.ResolvedValue {
	if !p.HasOrigination() {
		if latest != nil {
			return domain.ResolvedValue{Value: latest.Value.InexactFloat64(), Source: domain.SourceOverride}
		}
		return domain.ResolvedValue{Value: p.LoanBalance.InexactFloat64(), Source: domain.SourceStored}
	}

	calculated := CalculateAmortizedBalance(p, asOf)
	if latest == nil {
		return domain.ResolvedValue{Value: calculated, Source: domain.SourceAmortized}
	}

	if dateutil.MonthIndex(latest.RecordedAt) >= dateutil.MonthIndex(asOf) {
		return domain.ResolvedValue{Value: latest.Value.InexactFloat64(), Source: domain.SourceOverride}
	}
	return domain.ResolvedValue{Value: calculated, Source: domain.SourceAmortized}
}

// ResolveCurrentBalanceAt returns the resolved loan balance on asOf
func ResolveCurrentBalanceAt(p domain.PropertyAssumptions, latest *domain.ValueOverride, asOf time.Time) float64 {
	return ResolveLoanBalance(p, latest, asOf).Value
}

// ResolveCurrentBalance returns the resolved loan balance as of today
func ResolveCurrentBalance(p domain.PropertyAssumptions, latest *domain.ValueOverride) float64 {
	return ResolveCurrentBalanceAt(p, latest, nowFunc())
}

// ResolveHomeValue prefers the latest home-value observation over the stored value
func ResolveHomeValue(p domain.PropertyAssumptions, latest *domain.ValueOverride) domain.ResolvedValue {
	if latest != nil {
		return domain.ResolvedValue{Value: latest.Value.InexactFloat64(), Source: domain.SourceOverride}
	}
	return domain.ResolvedValue{Value: p.HomeValue.InexactFloat64(), Source: domain.SourceStored}
}

// roundWhole rounds half toward +Inf. NaN and Inf pass through.
func roundWhole(x float64) float64 {
	return math.Floor(x + 0.5)
}

// roundCents rounds half-up to cents. NaN and Inf pass through.
func roundCents(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return pkgdecimal.NewMoney(x).Round().Float()
}
