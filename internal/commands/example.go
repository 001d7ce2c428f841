package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/propeq/equity-dashboard/internal/config"
)

func newExampleCommand() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			ds := parser.CreateExampleDataset()
			if outputPath == "" {
				data, err := yaml.Marshal(ds)
				if err != nil {
					return fmt.Errorf("encoding example dataset: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := parser.SaveToFile(ds, outputPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example dataset written to %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "file to write (default: stdout)")
	return cmd
}
