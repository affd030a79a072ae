package ingest

import (
	"math"

	"github.com/chrisdamba/foodcatalog/internal/models"
)

// SyntheticLocation places the index-th of total records evenly on a circle of
// radius degrees around base. The result is flagged Synthetic.
func SyntheticLocation(base models.Location, radius float64, index, total int) models.Location {
	if total <= 0 {
		total = 1
	}
	angle := float64(index) / float64(total) * 2 * math.Pi
	return models.Location{
		Lat:       base.Lat + radius*math.Cos(angle),
		Lon:       base.Lon + radius*math.Sin(angle),
		Synthetic: true,
	}
}
