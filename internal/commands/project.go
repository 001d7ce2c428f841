package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/propeq/equity-dashboard/internal/logger"
	"github.com/propeq/equity-dashboard/internal/output"
	"github.com/propeq/equity-dashboard/internal/service"
)

type projectOptions struct {
	scenario string
	format   string
	myShare  bool
	owner    string
	asOf     string
	output   string
	query    string
	render   bool
	style    string
}

func newProjectCommand(root *rootOptions) *cobra.Command {
	opts := &projectOptions{}

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project equity and cash flow for the next ten years",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.scenario, "scenario", "all", "base, optimistic, pessimistic or all")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "console", fmt.Sprintf("output format (%v)", output.AvailableFormatterNames()))
	cmd.Flags().BoolVar(&opts.myShare, "my-share", false, "scale every series by the owner's share")
	cmd.Flags().StringVar(&opts.owner, "owner", "", "partner whose share is shown (default: first partner)")
	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "evaluation date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the report to this file instead of stdout")
	cmd.Flags().StringVar(&opts.query, "query", "", `print the result of a JSONPath query against the JSON report, e.g. '$.scenarios[?(@.scenario.name == "base")].annual[10].equity'`)
	cmd.Flags().BoolVar(&opts.render, "render", false, "render the markdown report for the terminal")
	cmd.Flags().StringVar(&opts.style, "style", "dark", "glamour style used by --render")

	return cmd
}

func runProject(cmd *cobra.Command, root *rootOptions, opts *projectOptions) error {
	ctx := cmd.Context()
	l := logger.FromContext(ctx)

	asOf, err := parseAsOf(opts.asOf)
	if err != nil {
		return err
	}
	svc, err := newService(cmd, root)
	if err != nil {
		return err
	}
	report, err := svc.Dashboard(ctx, service.DashboardOptions{
		Owner:    opts.owner,
		MyShare:  opts.myShare,
		AsOf:     asOf,
		Scenario: opts.scenario,
	})
	if err != nil {
		return err
	}

	var data []byte
	switch {
	case opts.query != "":
		v, err := output.Query(ctx, report, opts.query)
		if err != nil {
			return err
		}
		s, err := output.FormatQueryResult(v)
		if err != nil {
			return err
		}
		data = []byte(s + "\n")
	case opts.render:
		md, err := output.Render(report, "markdown")
		if err != nil {
			return err
		}
		s, err := output.RenderTerminal(md, opts.style)
		if err != nil {
			return err
		}
		data = []byte(s)
	default:
		data, err = output.Render(report, opts.format)
		if err != nil {
			return err
		}
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	l.Infow("report written", "path", opts.output, "format", output.NormalizeFormatName(opts.format))
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", opts.output)
	return nil
}
