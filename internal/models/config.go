package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// ColumnConfig maps record attributes to zero-based CSV column positions.
// A negative position disables the column.
type ColumnConfig struct {
	Name        int `mapstructure:"name"`
	Address     int `mapstructure:"address"`
	Phone       int `mapstructure:"phone"`
	Hours       int `mapstructure:"hours"`
	Cuisine     int `mapstructure:"cuisine"`
	Summary     int `mapstructure:"summary"`
	PriceRange  int `mapstructure:"price_range"`
	Rating      int `mapstructure:"rating"`
	Description int `mapstructure:"description"`
	Latitude    int `mapstructure:"latitude"`
	Longitude   int `mapstructure:"longitude"`
}

type IngestConfig struct {
	InputPath       string       `mapstructure:"input_path"`
	HasHeader       bool         `mapstructure:"has_header"`
	CityLat         float64      `mapstructure:"city_latitude"`
	CityLon         float64      `mapstructure:"city_longitude"`
	SyntheticRadius float64      `mapstructure:"synthetic_radius"`
	Columns         ColumnConfig `mapstructure:"columns"`
}

// BaseLocation is the configured city center.
func (c IngestConfig) BaseLocation() Location {
	return Location{Lat: c.CityLat, Lon: c.CityLon}
}

type SearchConfig struct {
	CatalogPath string  `mapstructure:"catalog_path"`
	Backend     string  `mapstructure:"backend"`
	RadiusKm    float64 `mapstructure:"radius_km"`
	Limit       int     `mapstructure:"limit"`
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
	Endpoint   string `mapstructure:"endpoint"`
}

type KafkaConfig struct {
	BrokerList string        `mapstructure:"broker_list"`
	Topic      string        `mapstructure:"topic"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type NATSConfig struct {
	URL     string `mapstructure:"url"`
	Subject string `mapstructure:"subject"`
}

type ElasticConfig struct {
	URL   string `mapstructure:"url"`
	Index string `mapstructure:"index"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type OutputConfig struct {
	Destinations []string           `mapstructure:"destinations"`
	Path         string             `mapstructure:"path"`
	Folder       string             `mapstructure:"folder"`
	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
	Kafka        KafkaConfig        `mapstructure:"kafka"`
	NATS         NATSConfig         `mapstructure:"nats"`
	Elastic      ElasticConfig      `mapstructure:"elastic"`
	Database     DatabaseConfig     `mapstructure:"database"`
}

type FavoritesConfig struct {
	DSN string `mapstructure:"dsn"`
}

type GenerateConfig struct {
	Rows       int    `mapstructure:"rows"`
	Seed       int64  `mapstructure:"seed"`
	OutputPath string `mapstructure:"output_path"`
}

type Config struct {
	Ingest    IngestConfig    `mapstructure:"ingest"`
	Search    SearchConfig    `mapstructure:"search"`
	Output    OutputConfig    `mapstructure:"output"`
	Favorites FavoritesConfig `mapstructure:"favorites"`
	Generate  GenerateConfig  `mapstructure:"generate"`
}

// DefaultIngestConfig describes the listing export this tool was written for:
// name, address, phone, hours, cuisine, -, summary, price range, rating, -,
// description. Coordinates are generated unless columns are configured.
func DefaultIngestConfig() IngestConfig {
	return IngestConfig{
		InputPath:       "data/restaurants.csv",
		HasHeader:       true,
		CityLat:         HoustonCenter.Lat,
		CityLon:         HoustonCenter.Lon,
		SyntheticRadius: DefaultSyntheticRadius,
		Columns: ColumnConfig{
			Name:        0,
			Address:     1,
			Phone:       2,
			Hours:       3,
			Cuisine:     4,
			Summary:     6,
			PriceRange:  7,
			Rating:      8,
			Description: 10,
			Latitude:    -1,
			Longitude:   -1,
		},
	}
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	ingest := DefaultIngestConfig()
	v.SetDefault("ingest.input_path", ingest.InputPath)
	v.SetDefault("ingest.has_header", ingest.HasHeader)
	v.SetDefault("ingest.city_latitude", ingest.CityLat)
	v.SetDefault("ingest.city_longitude", ingest.CityLon)
	v.SetDefault("ingest.synthetic_radius", ingest.SyntheticRadius)
	v.SetDefault("ingest.columns.name", ingest.Columns.Name)
	v.SetDefault("ingest.columns.address", ingest.Columns.Address)
	v.SetDefault("ingest.columns.phone", ingest.Columns.Phone)
	v.SetDefault("ingest.columns.hours", ingest.Columns.Hours)
	v.SetDefault("ingest.columns.cuisine", ingest.Columns.Cuisine)
	v.SetDefault("ingest.columns.summary", ingest.Columns.Summary)
	v.SetDefault("ingest.columns.price_range", ingest.Columns.PriceRange)
	v.SetDefault("ingest.columns.rating", ingest.Columns.Rating)
	v.SetDefault("ingest.columns.description", ingest.Columns.Description)
	v.SetDefault("ingest.columns.latitude", ingest.Columns.Latitude)
	v.SetDefault("ingest.columns.longitude", ingest.Columns.Longitude)

	v.SetDefault("search.catalog_path", "data/restaurants.json")
	v.SetDefault("search.backend", "memory")
	v.SetDefault("search.radius_km", 0)
	v.SetDefault("search.limit", 10)

	v.SetDefault("output.destinations", []string{"json"})
	v.SetDefault("output.path", "data")
	v.SetDefault("output.folder", "")
	v.SetDefault("output.cloud_storage.provider", "")
	v.SetDefault("output.cloud_storage.region", "us-east-1")
	v.SetDefault("output.kafka.broker_list", "localhost:9092")
	v.SetDefault("output.kafka.topic", "restaurants")
	v.SetDefault("output.kafka.timeout", "30s")
	v.SetDefault("output.nats.url", "nats://localhost:4222")
	v.SetDefault("output.nats.subject", "catalog.restaurants")
	v.SetDefault("output.elastic.url", "http://localhost:9200")
	v.SetDefault("output.elastic.index", "restaurants")
	v.SetDefault("output.database.url", "postgres://localhost:5432/foodcatalog")

	v.SetDefault("favorites.dsn", "favorites.db")

	v.SetDefault("generate.rows", 50)
	v.SetDefault("generate.seed", 42)
	v.SetDefault("generate.output_path", "data/restaurants.csv")
}

// LoadConfig reads the configuration through v. An explicit cfgFile must be
// readable; without one, a missing foodcatalog.{yaml,json} leaves the defaults.
func LoadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
		v.SetConfigName("foodcatalog")
	}

	v.SetEnvPrefix("FOODCATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := v.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
