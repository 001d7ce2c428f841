package calculation

import (
	"github.com/propeq/equity-dashboard/internal/domain"
)

// CumulativeBreakEven finds the first month where cumulative cash flow moves
// from negative to non-negative. The fractional month interpolates linearly
// between the two neighbouring points. Returns nil when no such crossing
// exists, including a series that is never negative.
func CumulativeBreakEven(monthly []domain.MonthlyPoint) *domain.BreakEvenResult {
	for i := 1; i < len(monthly); i++ {
		prev, cur := monthly[i-1].Cumulative, monthly[i].Cumulative
		if prev < 0 && cur >= 0 {
			fraction := -prev / (cur - prev)
			fractional := float64(monthly[i-1].Month) + fraction
			return &domain.BreakEvenResult{
				Month:           monthly[i].Month,
				FractionalMonth: fractional,
				Years:           fractional / 12,
			}
		}
	}
	return nil
}
