package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/propeq/equity-dashboard/internal/config"
	"github.com/propeq/equity-dashboard/internal/logger"
	"github.com/propeq/equity-dashboard/internal/store"
)

func newResetCommand(opts *rootOptions) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default projection assumptions",
		Long: "Restore growth, vacancy, tax, rent, maintenance, management, PMI and depreciation " +
			"to their defaults. Property value, loan facts, partners, transactions and histories are kept.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.LoadFileStore(opts.configPath)
			if err != nil {
				return err
			}
			ds, err := s.Dataset()
			if err != nil {
				return err
			}
			ds.Property = config.ResetProjectionDefaults(ds.Property)
			logger.FromContext(cmd.Context()).Debugw("projection assumptions reset", "path", opts.configPath)

			if outputPath == "" {
				data, err := yaml.Marshal(ds)
				if err != nil {
					return fmt.Errorf("encoding dataset: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := config.NewInputParser().SaveToFile(ds, outputPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dataset written to %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "file to write (default: stdout)")
	return cmd
}
