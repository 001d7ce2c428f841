package output

import (
	"github.com/gocarina/gocsv"

	"github.com/propeq/equity-dashboard/internal/domain"
)

type monthlyRow struct {
	Scenario    string  `csv:"scenario"`
	Month       int     `csv:"month"`
	Label       string  `csv:"label"`
	Income      float64 `csv:"income"`
	Expenses    float64 `csv:"expenses"`
	Net         float64 `csv:"net"`
	TaxBenefit  float64 `csv:"tax_benefit"`
	AdjustedNet float64 `csv:"adjusted_net"`
	Cumulative  float64 `csv:"cumulative"`
	LoanBalance float64 `csv:"loan_balance"`
}

// CSVMonthlyFormatter exports the full 120-month cash-flow series for every scenario.
type CSVMonthlyFormatter struct{}

func (c CSVMonthlyFormatter) Name() string { return "detailed-csv" }

func (c CSVMonthlyFormatter) Format(report *domain.DashboardReport) ([]byte, error) {
	rows := make([]*monthlyRow, 0, len(report.Scenarios)*120)
	for _, sc := range report.Scenarios {
		for _, p := range sc.Monthly {
			rows = append(rows, &monthlyRow{
				Scenario:    sc.Scenario.Name,
				Month:       p.Month,
				Label:       p.Label,
				Income:      p.Income,
				Expenses:    p.Expenses,
				Net:         p.Net,
				TaxBenefit:  p.TaxBenefit,
				AdjustedNet: p.AdjustedNet,
				Cumulative:  p.Cumulative,
				LoanBalance: p.LoanBalance,
			})
		}
	}
	return gocsv.MarshalBytes(&rows)
}
