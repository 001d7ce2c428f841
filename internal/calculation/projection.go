package calculation

import (
	"math"

	"github.com/propeq/equity-dashboard/internal/domain"
)

const (
	// ProjectionYears is the horizon of the annual series (points 0..10)
	ProjectionYears = 10
	// ProjectionMonths is the length of the monthly series
	ProjectionMonths = ProjectionYears * 12
)

// ProjectionOptions parameterizes one projection run. Nil start values fall
// back to the stored property fields.
type ProjectionOptions struct {
	RateOffset       float64
	StartHomeValue   *float64
	StartLoanBalance *float64
}

// assumptions is the float64 view of a property used by the projection math
type assumptions struct {
	homeValue          float64
	loanBalance        float64
	monthlyRent        float64
	monthlyMaintenance float64
	monthlyManagement  float64
	monthlyEscrow      float64
	propertyTaxAnnual  float64
	insuranceAnnual    float64
	pmiAnnual          float64
	depreciationAnnual float64
	homeGrowthRate     float64
	rentGrowthRate     float64
	inflationRate      float64
	vacancyRate        float64
	effectiveTaxRate   float64
	interestRate       float64
	loanTermYears      int
	pmiYears           int
}

func toAssumptions(p domain.PropertyAssumptions) assumptions {
	return assumptions{
		homeValue:          p.HomeValue.InexactFloat64(),
		loanBalance:        p.LoanBalance.InexactFloat64(),
		monthlyRent:        p.MonthlyRent.InexactFloat64(),
		monthlyMaintenance: p.MonthlyMaintenance.InexactFloat64(),
		monthlyManagement:  p.MonthlyManagement.InexactFloat64(),
		monthlyEscrow:      p.MonthlyEscrow.InexactFloat64(),
		propertyTaxAnnual:  p.PropertyTaxAnnual.InexactFloat64(),
		insuranceAnnual:    p.InsuranceAnnual.InexactFloat64(),
		pmiAnnual:          p.PMIAnnual.InexactFloat64(),
		depreciationAnnual: p.DepreciationAnnual.InexactFloat64(),
		homeGrowthRate:     p.HomeGrowthRate.InexactFloat64(),
		rentGrowthRate:     p.RentGrowthRate.InexactFloat64(),
		inflationRate:      p.InflationRate.InexactFloat64(),
		vacancyRate:        p.VacancyRate.InexactFloat64(),
		effectiveTaxRate:   p.EffectiveTaxRate.InexactFloat64(),
		interestRate:       p.InterestRate.InexactFloat64(),
		loanTermYears:      p.LoanTermYears,
		pmiYears:           p.PMIYears,
	}
}

func (o ProjectionOptions) startValues(a assumptions) (home, loan float64) {
	home, loan = a.homeValue, a.loanBalance
	if o.StartHomeValue != nil {
		home = *o.StartHomeValue
	}
	if o.StartLoanBalance != nil {
		loan = *o.StartLoanBalance
	}
	return home, loan
}

// taxBenefit is positive when deductions exceed income (a sheltering paper
// loss) and negative when the position owes tax.
func taxBenefit(income, deductible, taxRate float64) float64 {
	taxable := income - deductible
	if taxable < 0 {
		return math.Abs(taxable) * taxRate
	}
	return -(taxable * taxRate)
}

// ProjectAnnual produces the 11-point annual series. Year 0 is the unmodified
// starting snapshot. The rate offset shifts home growth only. Home value
// compounds from the start value with pow so each year is independent of
// the previous year's rounding. Rent and maintenance escalate with exponent
// year-1. Cash flow is pre-tax; the tax benefit is reported separately.
func ProjectAnnual(p domain.PropertyAssumptions, opts ProjectionOptions) []domain.AnnualPoint {
	a := toAssumptions(p)
	startHome, startLoan := opts.startValues(a)
	growth := a.homeGrowthRate + opts.RateOffset
	monthlyPI := MonthlyPayment(startLoan, a.interestRate, a.loanTermYears)
	monthlyRate := a.interestRate / 12

	points := make([]domain.AnnualPoint, 0, ProjectionYears+1)
	points = append(points, domain.AnnualPoint{
		Year:        0,
		HomeValue:   roundWhole(startHome),
		LoanBalance: roundWhole(startLoan),
		Equity:      roundWhole(startHome - startLoan),
	})

	balance := startLoan
	for year := 1; year <= ProjectionYears; year++ {
		homeValue := startHome * math.Pow(1+growth, float64(year))
		rent := a.monthlyRent * math.Pow(1+a.rentGrowthRate, float64(year-1))
		maintenance := a.monthlyMaintenance * math.Pow(1+a.inflationRate, float64(year-1))
		pmi := 0.0
		if year <= a.pmiYears {
			pmi = a.pmiAnnual / 12
		}

		effectiveIncome := rent * 12 * (1 - a.vacancyRate)
		maintenanceAnnual := maintenance * 12
		managementAnnual := a.monthlyManagement * 12
		pmiAnnual := pmi * 12
		totalExpenses := monthlyPI*12 + a.monthlyEscrow*12 + maintenanceAnnual + managementAnnual + pmiAnnual
		cashFlow := effectiveIncome - totalExpenses

		interestThisYear := 0.0
		for m := 0; m < 12; m++ {
			interest := balance * monthlyRate
			interestThisYear += interest
			balance = math.Max(0, balance-(monthlyPI-interest))
		}

		deductible := interestThisYear + a.propertyTaxAnnual + a.insuranceAnnual +
			maintenanceAnnual + managementAnnual + pmiAnnual + a.depreciationAnnual

		points = append(points, domain.AnnualPoint{
			Year:        year,
			HomeValue:   roundWhole(homeValue),
			LoanBalance: roundWhole(balance),
			Equity:      roundWhole(homeValue - balance),
			CashFlow:    roundWhole(cashFlow),
			TaxBenefit:  roundWhole(taxBenefit(effectiveIncome, deductible, a.effectiveTaxRate)),
		})
	}

	return points
}
