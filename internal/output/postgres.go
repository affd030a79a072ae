package output

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chrisdamba/foodcatalog/internal/models"
	"github.com/chrisdamba/foodcatalog/internal/repositories"
	"github.com/chrisdamba/foodcatalog/internal/repositories/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresOutput replaces the restaurants table with each catalog.
type PostgresOutput struct {
	pool   *pgxpool.Pool
	repo   repositories.RestaurantRepository
	logger *slog.Logger
}

// OpenPool connects to the database and verifies the connection.
func OpenPool(ctx context.Context, config models.DatabaseConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, config.URL)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	return pool, nil
}

func NewPostgresOutput(ctx context.Context, config models.DatabaseConfig, logger *slog.Logger) (*PostgresOutput, error) {
	pool, err := OpenPool(ctx, config)
	if err != nil {
		return nil, err
	}
	repo := postgres.NewRestaurantRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to prepare schema: %w", err)
	}
	logger.Info("postgres output ready")
	return &PostgresOutput{pool: pool, repo: repo, logger: logger}, nil
}

func NewPostgresOutputWithRepository(repo repositories.RestaurantRepository, logger *slog.Logger) *PostgresOutput {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresOutput{repo: repo, logger: logger}
}

// WriteCatalog replaces the stored records, then confirms the table holds
// exactly the catalog.
func (p *PostgresOutput) WriteCatalog(ctx context.Context, catalog *models.Catalog) error {
	if err := p.repo.ReplaceAll(ctx, catalog.Restaurants); err != nil {
		return fmt.Errorf("failed to store catalog: %w", err)
	}
	stored, err := p.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count stored restaurants: %w", err)
	}
	if stored != len(catalog.Restaurants) {
		return fmt.Errorf("stored %d restaurants, expected %d", stored, len(catalog.Restaurants))
	}
	p.logger.Info("catalog stored in postgres", "run_id", catalog.RunID, "restaurants", stored)
	return nil
}

func (p *PostgresOutput) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}
