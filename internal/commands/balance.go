package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/propeq/equity-dashboard/internal/output"
	"github.com/propeq/equity-dashboard/pkg/dateutil"
)

func newBalanceCommand(root *rootOptions) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the resolved loan balance and home value",
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
			b, err := svc.Balance(cmd.Context(), at)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "As of:        %s\n", b.AsOf.Format(dateutil.DateLayout))
			fmt.Fprintf(out, "Loan balance: %s (%s)\n", output.FormatCents(b.LoanBalance.Value), b.LoanBalance.Source)
			fmt.Fprintf(out, "Home value:   %s (%s)\n", output.FormatCents(b.HomeValue.Value), b.HomeValue.Source)
			fmt.Fprintf(out, "Monthly P&I:  %s\n", output.FormatCents(b.MonthlyPI))
			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "evaluation date YYYY-MM-DD (default: today)")
	return cmd
}
