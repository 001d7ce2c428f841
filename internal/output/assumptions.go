package output

import (
	"fmt"

	"github.com/propeq/equity-dashboard/internal/domain"
)

// GenerateAssumptions lists the modeling assumptions behind a report, rendered
// in the detailed outputs.
func GenerateAssumptions(p domain.PropertyAssumptions) []string {
	lines := []string{
		fmt.Sprintf("Home value growth: %s annually", FormatPercentage(p.HomeGrowthRate)),
		fmt.Sprintf("Rent growth: %s annually", FormatPercentage(p.RentGrowthRate)),
		fmt.Sprintf("Expense inflation: %s annually", FormatPercentage(p.InflationRate)),
		fmt.Sprintf("Vacancy: %s of rent", FormatPercentage(p.VacancyRate)),
		fmt.Sprintf("Effective tax rate: %s", FormatPercentage(p.EffectiveTaxRate)),
		fmt.Sprintf("Mortgage: %s over %d years", FormatPercentage(p.InterestRate), p.LoanTermYears),
	}
	if p.PMIYears > 0 && p.PMIAnnual.IsPositive() {
		lines = append(lines, fmt.Sprintf("PMI: %s per year for the first %d years", FormatDecimal(p.PMIAnnual), p.PMIYears))
	}
	if p.DepreciationAnnual.IsPositive() {
		lines = append(lines, fmt.Sprintf("Depreciation: %s per year", FormatDecimal(p.DepreciationAnnual)))
	}
	return append(lines, "Scenarios: base, optimistic +2%, pessimistic -2% applied to the growth rates")
}
