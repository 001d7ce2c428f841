package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/propeq/equity-dashboard/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// referenceProperty mirrors the dashboard's default assumptions
func referenceProperty() domain.PropertyAssumptions {
	return domain.PropertyAssumptions{
		HomeValue:          d("330000"),
		LoanBalance:        d("274803.87"),
		MonthlyRent:        d("1850"),
		MonthlyMaintenance: d("300"),
		MonthlyManagement:  d("95"),
		MonthlyEscrow:      d("450"),
		PropertyTaxAnnual:  d("4200"),
		InsuranceAnnual:    d("1500"),
		PMIAnnual:          d("488.88"),
		DepreciationAnnual: d("10229.09"),
		HomeGrowthRate:     d("0.04"),
		RentGrowthRate:     d("0.04"),
		InflationRate:      d("0.03"),
		VacancyRate:        d("0.05"),
		EffectiveTaxRate:   d("0.24"),
		InterestRate:       d("0.0599"),
		LoanTermYears:      30,
		PMIYears:           4,
	}
}

func originatedProperty() domain.PropertyAssumptions {
	p := referenceProperty()
	start := date(2024, 12, 19)
	p.OriginalLoanAmount = d("280000")
	p.LoanStartDate = &start
	return p
}

func override(recorded time.Time, value string) *domain.ValueOverride {
	return &domain.ValueOverride{RecordedAt: recorded, Value: d(value)}
}
