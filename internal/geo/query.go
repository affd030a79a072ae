package geo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chrisdamba/foodcatalog/internal/models"
)

var (
	ErrMissingQuery      = errors.New("query needs a coordinate or an address")
	ErrInvalidCoordinate = errors.New("coordinate out of range")
)

// Query is a search origin: an explicit coordinate, or free text to resolve.
// A coordinate takes precedence when both are present.
type Query struct {
	Latitude  *float64
	Longitude *float64
	Address   string
}

// AtLocation builds a coordinate query.
func AtLocation(loc models.Location) Query {
	lat, lon := loc.Lat, loc.Lon
	return Query{Latitude: &lat, Longitude: &lon}
}

// NearAddress builds a free-text query.
func NearAddress(address string) Query {
	return Query{Address: address}
}

// Origin resolves the query to a coordinate.
func (q Query) Origin(resolver *Resolver) (models.Location, error) {
	if q.Latitude != nil && q.Longitude != nil {
		loc := models.Location{Lat: *q.Latitude, Lon: *q.Longitude}
		if !loc.Valid() {
			return models.Location{}, fmt.Errorf("%w: %s", ErrInvalidCoordinate, loc)
		}
		return loc, nil
	}
	if strings.TrimSpace(q.Address) == "" {
		return models.Location{}, ErrMissingQuery
	}
	if resolver == nil {
		resolver = DefaultResolver()
	}
	return resolver.Resolve(q.Address), nil
}

// ResolveDistanceRank orders the catalog by distance from the query origin.
func ResolveDistanceRank(catalog *models.Catalog, q Query, resolver *Resolver) ([]Ranked, error) {
	origin, err := q.Origin(resolver)
	if err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, nil
	}
	return Rank(catalog.Restaurants, origin), nil
}
