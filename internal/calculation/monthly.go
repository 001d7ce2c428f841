package calculation

import (
	"fmt"
	"math"

	"github.com/propeq/equity-dashboard/internal/domain"
)

// ProjectMonthly produces the 120-point monthly cash-flow series. Unlike the
// annual series the rate offset shifts rent growth and inflation, and the tax
// benefit is folded into AdjustedNet. Cumulative sums the unrounded
// AdjustedNet values.
func ProjectMonthly(p domain.PropertyAssumptions, opts ProjectionOptions) []domain.MonthlyPoint {
	a := toAssumptions(p)
	_, startLoan := opts.startValues(a)
	monthlyPI := MonthlyPayment(startLoan, a.interestRate, a.loanTermYears)
	monthlyRate := a.interestRate / 12
	rentGrowth := a.rentGrowthRate + opts.RateOffset
	inflationGrowth := a.inflationRate + opts.RateOffset

	monthlyDepreciation := a.depreciationAnnual / 12
	monthlyPropertyTax := a.propertyTaxAnnual / 12
	monthlyInsurance := a.insuranceAnnual / 12

	points := make([]domain.MonthlyPoint, 0, ProjectionMonths)
	balance := startLoan
	cumulative := 0.0

	for month := 0; month < ProjectionMonths; month++ {
		year := float64(month / 12)
		rent := a.monthlyRent * math.Pow(1+rentGrowth, year)
		maintenance := a.monthlyMaintenance * math.Pow(1+inflationGrowth, year)
		pmi := 0.0
		if month < a.pmiYears*12 {
			pmi = a.pmiAnnual / 12
		}

		income := rent * (1 - a.vacancyRate)
		expenses := monthlyPI + a.monthlyEscrow + maintenance + a.monthlyManagement + pmi
		net := income - expenses

		interest := balance * monthlyRate
		balance = math.Max(0, balance-(monthlyPI-interest))

		deductible := interest + monthlyPropertyTax + monthlyInsurance +
			maintenance + a.monthlyManagement + pmi + monthlyDepreciation
		benefit := taxBenefit(income, deductible, a.effectiveTaxRate)

		adjustedNet := net + benefit
		cumulative += adjustedNet

		points = append(points, domain.MonthlyPoint{
			Month:       month,
			Label:       monthLabel(month),
			Income:      roundWhole(income),
			Expenses:    roundWhole(expenses),
			Net:         roundWhole(net),
			TaxBenefit:  roundWhole(benefit),
			AdjustedNet: roundWhole(adjustedNet),
			Cumulative:  roundWhole(cumulative),
			LoanBalance: roundWhole(balance),
		})
	}

	return points
}

func monthLabel(month int) string {
	switch {
	case month == 0:
		return "Now"
	case month%12 == 0:
		return fmt.Sprintf("Yr %d", month/12)
	default:
		return ""
	}
}
