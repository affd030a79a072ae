package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/chrisdamba/foodcatalog/internal/ingest"
	"github.com/chrisdamba/foodcatalog/internal/output"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Build a catalog from a listing export and write it to the configured outputs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		builder := ingest.NewBuilder(cfg.Ingest, logger)
		catalog, err := builder.BuildFile(cfg.Ingest.InputPath)
		if err != nil {
			return err
		}

		destinations, err := output.OpenDestinations(ctx, &cfg.Output, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := output.CloseAll(destinations); err != nil {
				logger.Error("failed to close outputs", "error", err)
			}
		}()

		bar := progressbar.NewOptions(len(destinations),
			progressbar.OptionSetDescription("writing catalog"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		names := make([]string, 0, len(destinations))
		for _, d := range destinations {
			bar.Describe("writing " + d.Name)
			if err := d.Writer.WriteCatalog(ctx, catalog); err != nil {
				return fmt.Errorf("write %s output: %w", d.Name, err)
			}
			logger.Debug("catalog delivered", "destination", d.Name, "run_id", catalog.RunID)
			names = append(names, d.Name)
			bar.Add(1)
		}
		bar.Finish()

		fmt.Fprintf(cmd.OutOrStdout(), "ingested %d restaurants (run %s) into %s\n",
			catalog.Len(), catalog.RunID, strings.Join(names, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().String("input", "data/restaurants.csv", "listing export to ingest")
	ingestCmd.Flags().Bool("header", true, "first non-blank line is a header row")
	ingestCmd.Flags().StringSlice("dest", []string{"json"}, "output destinations: json, parquet, kafka, nats, elastic, postgres, console")
	ingestCmd.Flags().String("out", "data", "base directory for file outputs")

	bindFlag(ingestCmd, "ingest.input_path", "input")
	bindFlag(ingestCmd, "ingest.has_header", "header")
	bindFlag(ingestCmd, "output.destinations", "dest")
	bindFlag(ingestCmd, "output.path", "out")
}
