// Package output delivers a built catalog to one or more destinations.
package output

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/chrisdamba/foodcatalog/internal/models"
)

// CatalogWriter receives a complete catalog snapshot.
type CatalogWriter interface {
	WriteCatalog(ctx context.Context, catalog *models.Catalog) error
	Close() error
}

const (
	DestinationJSON     = "json"
	DestinationParquet  = "parquet"
	DestinationKafka    = "kafka"
	DestinationNATS     = "nats"
	DestinationElastic  = "elastic"
	DestinationPostgres = "postgres"
	DestinationConsole  = "console"
)

// Destination is a named, opened CatalogWriter.
type Destination struct {
	Name   string
	Writer CatalogWriter
}

// NewCatalogWriter opens the destination called name.
func NewCatalogWriter(ctx context.Context, name string, config *models.OutputConfig, logger *slog.Logger) (CatalogWriter, error) {
	if logger == nil {
		logger = slog.Default()
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case DestinationJSON:
		return NewJSONOutput(config.Path, config.Folder), nil
	case DestinationParquet:
		return NewParquetOutput(ctx, config, logger)
	case DestinationKafka:
		return NewKafkaOutput(config.Kafka, logger)
	case DestinationNATS:
		return NewNATSOutput(config.NATS, logger)
	case DestinationElastic:
		return NewElasticOutput(ctx, config.Elastic, logger)
	case DestinationPostgres:
		return NewPostgresOutput(ctx, config.Database, logger)
	case DestinationConsole:
		return NewConsoleOutput(os.Stdout), nil
	default:
		return nil, fmt.Errorf("unsupported output destination: %q", name)
	}
}

// OpenDestinations opens every configured destination. If one fails, the
// ones already opened are closed again.
func OpenDestinations(ctx context.Context, config *models.OutputConfig, logger *slog.Logger) ([]Destination, error) {
	if len(config.Destinations) == 0 {
		return nil, errors.New("no output destinations configured")
	}
	var opened []Destination
	for _, name := range config.Destinations {
		w, err := NewCatalogWriter(ctx, name, config, logger)
		if err != nil {
			CloseAll(opened)
			return nil, fmt.Errorf("open %s output: %w", name, err)
		}
		opened = append(opened, Destination{Name: name, Writer: w})
	}
	return opened, nil
}

// CloseAll closes every destination and joins their errors.
func CloseAll(destinations []Destination) error {
	var errs []error
	for _, d := range destinations {
		if err := d.Writer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s output: %w", d.Name, err))
		}
	}
	return errors.Join(errs...)
}
