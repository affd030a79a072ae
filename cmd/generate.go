package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chrisdamba/foodcatalog/internal/factories"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a fake listing export for demos",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := cfg.Generate
		if gen.Rows < 0 {
			return fmt.Errorf("rows must not be negative, got %d", gen.Rows)
		}
		if err := os.MkdirAll(filepath.Dir(gen.OutputPath), os.ModePerm); err != nil {
			return err
		}
		file, err := os.Create(gen.OutputPath)
		if err != nil {
			return err
		}
		defer file.Close()

		bar := progressbar.NewOptions(gen.Rows,
			progressbar.OptionSetDescription("generating rows"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		factory := factories.NewRestaurantRowFactory(gen.Seed)
		if err := factory.WriteCSV(file, gen.Rows, func() { bar.Add(1) }); err != nil {
			return fmt.Errorf("failed to write %s: %w", gen.OutputPath, err)
		}
		bar.Finish()
		if err := file.Close(); err != nil {
			return err
		}

		logger.Debug("listing export generated", "path", gen.OutputPath, "rows", gen.Rows, "seed", gen.Seed)
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", gen.Rows, gen.OutputPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int("rows", 50, "number of restaurants to generate")
	generateCmd.Flags().Int64("seed", 42, "random seed")
	generateCmd.Flags().String("out", "data/restaurants.csv", "output CSV path")

	bindFlag(generateCmd, "generate.rows", "rows")
	bindFlag(generateCmd, "generate.seed", "seed")
	bindFlag(generateCmd, "generate.output_path", "out")
}
