package calculation

import (
	"github.com/montanaflynn/stats"

	"github.com/propeq/equity-dashboard/internal/domain"
)

// CalculateCashFlowStats summarizes the monthly adjusted net cash flow.
// An empty series yields zero stats.
func CalculateCashFlowStats(monthly []domain.MonthlyPoint) domain.CashFlowStats {
	if len(monthly) == 0 {
		return domain.CashFlowStats{}
	}

	data := make(stats.Float64Data, len(monthly))
	totalTax := 0.0
	for i, p := range monthly {
		data[i] = p.AdjustedNet
		totalTax += p.TaxBenefit
	}

	// errors only occur on empty input, handled above
	mean, _ := data.Mean()
	median, _ := data.Median()
	stdDev, _ := data.StandardDeviation()
	minV, _ := data.Min()
	maxV, _ := data.Max()

	return domain.CashFlowStats{
		MeanAdjustedNet:   mean,
		MedianAdjustedNet: median,
		StdDevAdjustedNet: stdDev,
		MinAdjustedNet:    minV,
		MaxAdjustedNet:    maxV,
		TotalTaxBenefit:   totalTax,
	}
}
