package repositories

import (
	"context"

	"github.com/chrisdamba/foodcatalog/internal/geo"
	"github.com/chrisdamba/foodcatalog/internal/models"
)

type RestaurantRepository interface {
	EnsureSchema(ctx context.Context) error
	// ReplaceAll swaps the stored records for restaurants atomically.
	ReplaceAll(ctx context.Context, restaurants []models.Restaurant) error
	// FindNearby returns records ordered by distance from location. A
	// non-positive radius or limit disables that bound.
	FindNearby(ctx context.Context, location models.Location, radiusKm float64, limit int) ([]geo.Ranked, error)
	Count(ctx context.Context) (int, error)
}
