package geo

import (
	"strings"

	"github.com/chrisdamba/foodcatalog/internal/models"
)

// Place is one keyword of the resolver table.
type Place struct {
	Keyword  string
	Location models.Location
}

// houstonPlaces is searched in order; the first keyword contained in the
// query wins, so this order is part of the resolver's behavior.
var houstonPlaces = []Place{
	{"houston", models.Location{Lat: 29.7604, Lon: -95.3698}},
	{"downtown", models.Location{Lat: 29.7604, Lon: -95.3698}},
	{"downtown houston", models.Location{Lat: 29.7604, Lon: -95.3698}},
	{"galleria", models.Location{Lat: 29.7384, Lon: -95.4624}},
	{"memorial", models.Location{Lat: 29.7752, Lon: -95.5591}},
	{"heights", models.Location{Lat: 29.8027, Lon: -95.4108}},
	{"montrose", models.Location{Lat: 29.7425, Lon: -95.3960}},
	{"midtown", models.Location{Lat: 29.7424, Lon: -95.3687}},
	{"rice village", models.Location{Lat: 29.7173, Lon: -95.4200}},
	{"medical center", models.Location{Lat: 29.7072, Lon: -95.4020}},
	{"energy corridor", models.Location{Lat: 29.7752, Lon: -95.6391}},
	{"hillcroft", models.Location{Lat: 29.7123, Lon: -95.4954}},
	{"westheimer", models.Location{Lat: 29.7370, Lon: -95.5195}},
	{"77002", models.Location{Lat: 29.7589, Lon: -95.3677}},
	{"77006", models.Location{Lat: 29.7425, Lon: -95.3960}},
	{"77019", models.Location{Lat: 29.7504, Lon: -95.4022}},
	{"77027", models.Location{Lat: 29.7476, Lon: -95.4376}},
	{"77036", models.Location{Lat: 29.7018, Lon: -95.5418}},
	{"77057", models.Location{Lat: 29.7342, Lon: -95.4623}},
	{"77063", models.Location{Lat: 29.7342, Lon: -95.5212}},
	{"77074", models.Location{Lat: 29.6785, Lon: -95.5090}},
	{"77081", models.Location{Lat: 29.6912, Lon: -95.5034}},
	{"77098", models.Location{Lat: 29.7345, Lon: -95.4177}},
	{"77099", models.Location{Lat: 29.6589, Lon: -95.5812}},
}

// Resolver maps free text to a location by keyword containment. It stands
// in for a geocoding service and never fails: unknown text resolves to the
// fallback.
type Resolver struct {
	places   []Place
	fallback models.Location
}

// NewResolver copies places so later changes by the caller cannot reorder
// the table.
func NewResolver(places []Place, fallback models.Location) *Resolver {
	return &Resolver{
		places:   append([]Place(nil), places...),
		fallback: fallback,
	}
}

var defaultResolver = NewResolver(houstonPlaces, models.HoustonCenter)

// DefaultResolver knows Houston neighborhoods and postal codes and falls back
// to the city center.
func DefaultResolver() *Resolver {
	return defaultResolver
}

// Lookup reports the first table keyword contained in text.
func (r *Resolver) Lookup(text string) (Place, bool) {
	lower := strings.ToLower(text)
	for _, p := range r.places {
		if strings.Contains(lower, p.Keyword) {
			return p, true
		}
	}
	return Place{}, false
}

func (r *Resolver) Resolve(text string) models.Location {
	if p, ok := r.Lookup(text); ok {
		return p.Location
	}
	return r.fallback
}

func (r *Resolver) Fallback() models.Location {
	return r.fallback
}
