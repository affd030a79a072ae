// Package geo ranks catalog records by great-circle distance from a query
// location, resolving free-text places through a fixed keyword table.
package geo

import (
	"fmt"
	"math"

	"github.com/chrisdamba/foodcatalog/internal/models"
)

const earthRadiusKm = 6371.0

// Distance returns the haversine distance in kilometers.
func Distance(a, b models.Location) float64 {
	lat1 := degreesToRadians(a.Lat)
	lat2 := degreesToRadians(b.Lat)
	dlat := degreesToRadians(b.Lat - a.Lat)
	dlon := degreesToRadians(b.Lon - a.Lon)

	h := math.Pow(math.Sin(dlat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// FormatDistance renders sub-kilometer distances as whole meters and longer
// ones in kilometers with one decimal.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1f km", km)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
