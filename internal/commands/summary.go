package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/propeq/equity-dashboard/internal/calculation"
	"github.com/propeq/equity-dashboard/internal/output"
	"github.com/propeq/equity-dashboard/internal/service"
)

func newSummaryCommand(root *rootOptions) *cobra.Command {
	var owner, asOf string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the four dashboard summary cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parseAsOf(asOf)
			if err != nil {
				return err
			}
			svc, err := newService(cmd, root)
			if err != nil {
				return err
			}
			report, err := svc.Dashboard(cmd.Context(), service.DashboardOptions{
				Owner:    owner,
				AsOf:     at,
				Scenario: calculation.ScenarioBase,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			who := report.Owner
			if who == "" {
				who = "whole property"
			}
			fmt.Fprintf(out, "%s (%s) as of %s\n", who, output.FormatShare(report.Share), report.AsOf.Format("2006-01-02"))
			fmt.Fprintf(out, "Equity:            %s\n", output.FormatCurrency(report.Summary.Equity))
			fmt.Fprintf(out, "Equity change/mo:  %s\n", output.FormatCurrency(report.Summary.EquityDeltaMonthly))
			fmt.Fprintf(out, "This month:        %s\n", output.FormatCurrency(report.Summary.MonthCashFlow))
			fmt.Fprintf(out, "Running balance:   %s\n", output.FormatCurrency(report.Summary.RunningBalance))
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "partner whose share is shown (default: first partner)")
	cmd.Flags().StringVar(&asOf, "as-of", "", "evaluation date YYYY-MM-DD (default: today)")
	return cmd
}
