package output

import (
	"github.com/gocarina/gocsv"

	"github.com/propeq/equity-dashboard/internal/domain"
)

type annualRow struct {
	Scenario    string  `csv:"scenario"`
	Year        int     `csv:"year"`
	HomeValue   float64 `csv:"home_value"`
	LoanBalance float64 `csv:"loan_balance"`
	Equity      float64 `csv:"equity"`
	CashFlow    float64 `csv:"cash_flow"`
	TaxBenefit  float64 `csv:"tax_benefit"`
}

// CSVAnnualFormatter writes the annual series, one row per scenario-year.
type CSVAnnualFormatter struct{}

func (c CSVAnnualFormatter) Name() string { return "csv" }

func (c CSVAnnualFormatter) Format(report *domain.DashboardReport) ([]byte, error) {
	rows := make([]*annualRow, 0, len(report.Scenarios)*11)
	for _, sc := range report.Scenarios {
		for _, p := range sc.Annual {
			rows = append(rows, &annualRow{
				Scenario:    sc.Scenario.Name,
				Year:        p.Year,
				HomeValue:   p.HomeValue,
				LoanBalance: p.LoanBalance,
				Equity:      p.Equity,
				CashFlow:    p.CashFlow,
				TaxBenefit:  p.TaxBenefit,
			})
		}
	}
	return gocsv.MarshalBytes(&rows)
}
