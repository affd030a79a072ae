package geo

import (
	"sort"

	"github.com/chrisdamba/foodcatalog/internal/models"
)

// Ranked pairs a record with its distance from the query point.
type Ranked struct {
	Restaurant models.Restaurant `json:"restaurant"`
	DistanceKm float64           `json:"distanceKm"`
}

// Rank orders restaurants by ascending distance from ref. Ties keep catalog
// order and the input slice is left untouched.
func Rank(restaurants []models.Restaurant, ref models.Location) []Ranked {
	ranked := make([]Ranked, len(restaurants))
	for i, r := range restaurants {
		ranked[i] = Ranked{Restaurant: r, DistanceKm: Distance(ref, r.Coordinates)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	return ranked
}

// Within keeps the prefix of an already ranked slice that lies within
// radiusKm. A non-positive radius keeps everything.
func Within(ranked []Ranked, radiusKm float64) []Ranked {
	if radiusKm <= 0 {
		return ranked
	}
	n := sort.Search(len(ranked), func(i int) bool {
		return ranked[i].DistanceKm > radiusKm
	})
	return ranked[:n]
}

// Limit truncates to at most n results. A non-positive n keeps everything.
func Limit(ranked []Ranked, n int) []Ranked {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
