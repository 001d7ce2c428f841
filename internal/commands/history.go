package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/propeq/equity-dashboard/internal/domain"
	"github.com/propeq/equity-dashboard/internal/output"
	"github.com/propeq/equity-dashboard/pkg/dateutil"
)

func newHistoryCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List recorded home value and loan balance overrides, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd, root)
			if err != nil {
				return err
			}
			h, err := svc.History(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printHistory(out, "Home value", h.HomeValues)
			fmt.Fprintln(out)
			printHistory(out, "Loan balance", h.LoanBalances)
			return nil
		},
	}
}

func printHistory(w io.Writer, title string, entries []domain.ValueOverride) {
	fmt.Fprintf(w, "%s history\n", title)
	if len(entries) == 0 {
		fmt.Fprintln(w, "  (none recorded)")
		return
	}
	for _, e := range entries {
		line := fmt.Sprintf("  %s  %14s", e.RecordedAt.Format(dateutil.DateLayout), output.FormatDecimal(e.Value))
		if e.Source != "" {
			line += "  " + e.Source
		}
		if e.Note != "" {
			line += "  " + e.Note
		}
		fmt.Fprintln(w, line)
	}
}
