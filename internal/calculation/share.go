package calculation

import (
	"github.com/propeq/equity-dashboard/internal/domain"
)

// ApplyShare converts a whole-property figure into a partner's displayed figure
func ApplyShare(value, share float64) float64 {
	return roundWhole(value * share)
}

// ScaleAnnual returns a copy of the series with every monetary field scaled by share
func ScaleAnnual(points []domain.AnnualPoint, share float64) []domain.AnnualPoint {
	out := make([]domain.AnnualPoint, len(points))
	for i, p := range points {
		out[i] = domain.AnnualPoint{
			Year:        p.Year,
			HomeValue:   ApplyShare(p.HomeValue, share),
			LoanBalance: ApplyShare(p.LoanBalance, share),
			Equity:      ApplyShare(p.Equity, share),
			CashFlow:    ApplyShare(p.CashFlow, share),
			TaxBenefit:  ApplyShare(p.TaxBenefit, share),
		}
	}
	return out
}

// ScaleMonthly returns a copy of the series with every monetary field scaled by share
func ScaleMonthly(points []domain.MonthlyPoint, share float64) []domain.MonthlyPoint {
	out := make([]domain.MonthlyPoint, len(points))
	for i, p := range points {
		out[i] = domain.MonthlyPoint{
			Month:       p.Month,
			Label:       p.Label,
			Income:      ApplyShare(p.Income, share),
			Expenses:    ApplyShare(p.Expenses, share),
			Net:         ApplyShare(p.Net, share),
			TaxBenefit:  ApplyShare(p.TaxBenefit, share),
			AdjustedNet: ApplyShare(p.AdjustedNet, share),
			Cumulative:  ApplyShare(p.Cumulative, share),
			LoanBalance: ApplyShare(p.LoanBalance, share),
		}
	}
	return out
}

// ScaleProjection scales both series of a scenario. Stats and break-even
// timing are recomputed from the scaled monthly series.
func ScaleProjection(sp domain.ScenarioProjection, share float64) domain.ScenarioProjection {
	monthly := ScaleMonthly(sp.Monthly, share)
	return domain.ScenarioProjection{
		Scenario:  sp.Scenario,
		Annual:    ScaleAnnual(sp.Annual, share),
		Monthly:   monthly,
		Stats:     CalculateCashFlowStats(monthly),
		BreakEven: CumulativeBreakEven(monthly),
	}
}
