package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/chrisdamba/foodcatalog/internal/display"
	"github.com/chrisdamba/foodcatalog/internal/geo"
	"github.com/chrisdamba/foodcatalog/internal/ingest"
	"github.com/chrisdamba/foodcatalog/internal/models"
	"github.com/chrisdamba/foodcatalog/internal/output"
	"github.com/chrisdamba/foodcatalog/internal/repositories/postgres"
	"github.com/spf13/cobra"
)

// nearbyFunc is a backend that ranks stored records itself.
type nearbyFunc func(ctx context.Context, origin models.Location, radiusKm float64, limit int) ([]geo.Ranked, error)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "List restaurants nearest to a coordinate or an address",
	Example: `  foodcatalog search --lat 29.74 --lon -95.46
  foodcatalog search --address "near the Galleria" --limit 5
  foodcatalog search --address 77006 --backend elastic --radius 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		q := searchQuery(cmd)

		var ranked []geo.Ranked
		var err error
		switch cfg.Search.Backend {
		case "", "memory":
			ranked, err = searchMemory(cmd, q)
		case "elastic":
			ranked, err = searchBackend(ctx, q, func(ctx context.Context, origin models.Location, radiusKm float64, limit int) ([]geo.Ranked, error) {
				es, err := output.NewElasticOutput(ctx, cfg.Output.Elastic, logger)
				if err != nil {
					return nil, err
				}
				defer es.Close()
				return es.Nearby(ctx, origin, radiusKm, limit)
			})
		case "postgres":
			ranked, err = searchBackend(ctx, q, func(ctx context.Context, origin models.Location, radiusKm float64, limit int) ([]geo.Ranked, error) {
				pool, err := output.OpenPool(ctx, cfg.Output.Database)
				if err != nil {
					return nil, err
				}
				defer pool.Close()
				return postgres.NewRestaurantRepository(pool).FindNearby(ctx, origin, radiusKm, limit)
			})
		default:
			return fmt.Errorf("unsupported search backend: %q", cfg.Search.Backend)
		}
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(ranked)
		}
		printRanked(cmd.OutOrStdout(), ranked, time.Now())
		return nil
	},
}

func searchQuery(cmd *cobra.Command) geo.Query {
	var q geo.Query
	if cmd.Flags().Changed("lat") {
		lat, _ := cmd.Flags().GetFloat64("lat")
		q.Latitude = &lat
	}
	if cmd.Flags().Changed("lon") {
		lon, _ := cmd.Flags().GetFloat64("lon")
		q.Longitude = &lon
	}
	q.Address, _ = cmd.Flags().GetString("address")
	return q
}

// searchMemory ranks a catalog loaded from a previous ingest, or built on
// the fly when --input is given.
func searchMemory(cmd *cobra.Command, q geo.Query) ([]geo.Ranked, error) {
	var catalog *models.Catalog
	var err error
	if input, _ := cmd.Flags().GetString("input"); input != "" {
		catalog, err = ingest.NewBuilder(cfg.Ingest, logger).BuildFile(input)
	} else {
		catalog, err = models.LoadCatalog(cfg.Search.CatalogPath)
	}
	if err != nil {
		return nil, err
	}

	ranked, err := geo.ResolveDistanceRank(catalog, q, nil)
	if err != nil {
		return nil, err
	}
	return geo.Limit(geo.Within(ranked, cfg.Search.RadiusKm), cfg.Search.Limit), nil
}

func searchBackend(ctx context.Context, q geo.Query, nearby nearbyFunc) ([]geo.Ranked, error) {
	origin, err := q.Origin(nil)
	if err != nil {
		return nil, err
	}
	logger.Debug("searching", "backend", cfg.Search.Backend, "origin", origin.String())
	return nearby(ctx, origin, cfg.Search.RadiusKm, cfg.Search.Limit)
}

func printRanked(w io.Writer, ranked []geo.Ranked, now time.Time) {
	if len(ranked) == 0 {
		fmt.Fprintln(w, "no restaurants found")
		return
	}
	for i, r := range ranked {
		fmt.Fprintf(w, "%2d. %s  [%s]\n", i+1, display.Card(r.Restaurant, now), geo.FormatDistance(r.DistanceKm))
		fmt.Fprintf(w, "    📍 %s\n", r.Restaurant.Address)
	}
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().Float64("lat", 0, "latitude of the search origin")
	searchCmd.Flags().Float64("lon", 0, "longitude of the search origin")
	searchCmd.Flags().String("address", "", "free-text place to search near")
	searchCmd.Flags().String("catalog", "data/restaurants.json", "catalog written by ingest")
	searchCmd.Flags().String("input", "", "build the catalog from this listing export instead")
	searchCmd.Flags().String("backend", "memory", "search backend: memory, elastic or postgres")
	searchCmd.Flags().Float64("radius", 0, "only show results within this many kilometers")
	searchCmd.Flags().Int("limit", 10, "maximum number of results (0 for all)")
	searchCmd.Flags().Bool("json", false, "print results as JSON")

	bindFlag(searchCmd, "search.catalog_path", "catalog")
	bindFlag(searchCmd, "search.backend", "backend")
	bindFlag(searchCmd, "search.radius_km", "radius")
	bindFlag(searchCmd, "search.limit", "limit")
}
