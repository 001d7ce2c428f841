package output

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/propeq/equity-dashboard/internal/domain"
)

// MarkdownFormatter writes the dashboard as a markdown document.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(report *domain.DashboardReport) ([]byte, error) {
	var buf bytes.Buffer
	title := report.Property.Name
	if title == "" {
		title = "Property Equity Dashboard"
	}
	fmt.Fprintf(&buf, "# %s\n\n", title)
	fmt.Fprintf(&buf, "As of **%s** for **%s** (%s)\n\n", report.AsOf.Format("2006-01-02"), ownerName(report), FormatShare(report.Share))

	fmt.Fprintln(&buf, "| Starting point | Value | Source |")
	fmt.Fprintln(&buf, "|---|---:|---|")
	fmt.Fprintf(&buf, "| Home value | %s | %s |\n", FormatCents(report.HomeValue.Value), report.HomeValue.Source)
	fmt.Fprintf(&buf, "| Loan balance | %s | %s |\n", FormatCents(report.LoanBalance.Value), report.LoanBalance.Source)
	fmt.Fprintf(&buf, "| Monthly P&I | %s | |\n\n", FormatCents(report.MonthlyPI))

	fmt.Fprintln(&buf, "## Summary")
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "- Your equity: %s\n", FormatCurrency(report.Summary.Equity))
	fmt.Fprintf(&buf, "- Equity change per month: %s\n", FormatCurrency(report.Summary.EquityDeltaMonthly))
	fmt.Fprintf(&buf, "- This month: %s\n", FormatCurrency(report.Summary.MonthCashFlow))
	fmt.Fprintf(&buf, "- Running balance: %s\n", FormatCurrency(report.Summary.RunningBalance))

	for _, sc := range report.Scenarios {
		fmt.Fprintf(&buf, "\n## Scenario: %s\n\n", sc.Scenario.Name)
		if report.Scaled {
			fmt.Fprintf(&buf, "_Figures scaled to %s._\n\n", FormatShare(report.Share))
		}
		fmt.Fprintln(&buf, "| Year | Home value | Loan balance | Equity | Cash flow | Tax benefit |")
		fmt.Fprintln(&buf, "|---:|---:|---:|---:|---:|---:|")
		for _, p := range sc.Annual {
			fmt.Fprintf(&buf, "| %d | %s | %s | %s | %s | %s |\n", p.Year,
				FormatCurrency(p.HomeValue), FormatCurrency(p.LoanBalance), FormatCurrency(p.Equity),
				FormatCurrency(p.CashFlow), FormatCurrency(p.TaxBenefit))
		}
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Mean monthly adjusted net %s, total tax benefit %s. Break-even: %s.\n",
			FormatCurrency(sc.Stats.MeanAdjustedNet), FormatCurrency(sc.Stats.TotalTaxBenefit), breakEvenText(sc.BreakEven))
	}

	fmt.Fprintln(&buf, "\n## Assumptions")
	fmt.Fprintln(&buf)
	for _, a := range GenerateAssumptions(report.Property) {
		fmt.Fprintf(&buf, "- %s\n", a)
	}
	return buf.Bytes(), nil
}

// RenderTerminal renders markdown for a terminal with the given glamour style
// ("dark", "light", "notty", ...).
func RenderTerminal(markdown []byte, style string) (string, error) {
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(string(markdown))
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
