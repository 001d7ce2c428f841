package output

import (
	"bytes"
	"fmt"

	"github.com/propeq/equity-dashboard/internal/domain"
)

// ConsoleFormatter provides a plain-text dashboard summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.DashboardReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "PROPERTY EQUITY DASHBOARD")
	fmt.Fprintln(&buf, "================================")
	if report.Property.Name != "" {
		fmt.Fprintf(&buf, "Property: %s\n", report.Property.Name)
	}
	fmt.Fprintf(&buf, "As of: %s\n", report.AsOf.Format("2006-01-02"))
	fmt.Fprintf(&buf, "Owner: %s (%s)\n", ownerName(report), FormatShare(report.Share))
	fmt.Fprintf(&buf, "Home value: %s [%s]\n", FormatCents(report.HomeValue.Value), report.HomeValue.Source)
	fmt.Fprintf(&buf, "Loan balance: %s [%s]\n", FormatCents(report.LoanBalance.Value), report.LoanBalance.Source)
	fmt.Fprintf(&buf, "Monthly P&I: %s\n", FormatCents(report.MonthlyPI))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SUMMARY")
	fmt.Fprintf(&buf, "  Your equity:        %s\n", FormatCurrency(report.Summary.Equity))
	fmt.Fprintf(&buf, "  Equity change / mo: %s\n", FormatCurrency(report.Summary.EquityDeltaMonthly))
	fmt.Fprintf(&buf, "  This month:         %s\n", FormatCurrency(report.Summary.MonthCashFlow))
	fmt.Fprintf(&buf, "  Running balance:    %s\n", FormatCurrency(report.Summary.RunningBalance))

	for _, sc := range report.Scenarios {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "SCENARIO %s (rate offset %+.0f%%)\n", sc.Scenario.Name, sc.Scenario.RateOffset*100)
		if report.Scaled {
			fmt.Fprintf(&buf, "  figures scaled to %s\n", FormatShare(report.Share))
		}
		fmt.Fprintf(&buf, "  %-4s %12s %12s %12s %10s %10s\n", "Year", "Home", "Loan", "Equity", "CashFlow", "TaxBenefit")
		for _, p := range sc.Annual {
			fmt.Fprintf(&buf, "  %-4d %12s %12s %12s %10s %10s\n", p.Year,
				FormatCurrency(p.HomeValue), FormatCurrency(p.LoanBalance), FormatCurrency(p.Equity),
				FormatCurrency(p.CashFlow), FormatCurrency(p.TaxBenefit))
		}
		if n := len(sc.Monthly); n > 0 {
			last := sc.Monthly[n-1]
			fmt.Fprintf(&buf, "  Cumulative cash flow after %d months: %s\n", n, FormatCurrency(last.Cumulative))
		}
		fmt.Fprintf(&buf, "  Monthly adjusted net: mean %s, median %s, min %s, max %s\n",
			FormatCurrency(sc.Stats.MeanAdjustedNet), FormatCurrency(sc.Stats.MedianAdjustedNet),
			FormatCurrency(sc.Stats.MinAdjustedNet), FormatCurrency(sc.Stats.MaxAdjustedNet))
		fmt.Fprintf(&buf, "  Total tax benefit: %s\n", FormatCurrency(sc.Stats.TotalTaxBenefit))
		fmt.Fprintf(&buf, "  Break-even: %s\n", breakEvenText(sc.BreakEven))
	}
	return buf.Bytes(), nil
}

func ownerName(report *domain.DashboardReport) string {
	if report.Owner == "" {
		return "whole property"
	}
	return report.Owner
}

func breakEvenText(be *domain.BreakEvenResult) string {
	if be == nil {
		return "not within projection"
	}
	return fmt.Sprintf("month %d (%.1f years)", be.Month, be.Years)
}
