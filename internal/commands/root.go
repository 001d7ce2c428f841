package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/propeq/equity-dashboard/internal/calculation"
	"github.com/propeq/equity-dashboard/internal/logger"
	"github.com/propeq/equity-dashboard/internal/service"
	"github.com/propeq/equity-dashboard/internal/store"
	"github.com/propeq/equity-dashboard/pkg/dateutil"
)

// Version is set at build time
var Version = "dev"

type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "propeq",
		Short:   "Equity and cash-flow projections for a co-owned rental property",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l := logger.New(opts.verbose)
			cmd.SetContext(logger.WithContext(cmd.Context(), l))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "dashboard.yaml", "dataset file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging with calculation breakdowns")

	rootCmd.AddCommand(
		newProjectCommand(opts),
		newBalanceCommand(opts),
		newSummaryCommand(opts),
		newHistoryCommand(opts),
		newExampleCommand(),
		newResetCommand(opts),
	)

	return rootCmd
}

// newService loads the dataset file and wires the engine to the context logger
func newService(cmd *cobra.Command, opts *rootOptions) (*service.DashboardService, error) {
	l := logger.FromContext(cmd.Context())
	s, err := store.LoadFileStore(opts.configPath)
	if err != nil {
		return nil, err
	}
	l.Debugw("dataset loaded", "path", opts.configPath)

	engine := calculation.NewCalculationEngine()
	engine.Debug = opts.verbose
	engine.SetLogger(l)
	return service.NewDashboardService(s, engine, l), nil
}

func parseAsOf(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return dateutil.ParseDate(v)
}
