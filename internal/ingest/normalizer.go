package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/chrisdamba/foodcatalog/internal/models"
)

var leadingNumber = regexp.MustCompile(`^[-+]?(\d+(\.\d*)?|\.\d+)`)

// Normalizer turns one split row into a Restaurant. Every attribute has a
// fallback, so a short or empty row still yields a complete record.
type Normalizer struct {
	Columns models.ColumnConfig
	Base    models.Location
	Radius  float64
}

func NewNormalizer(cfg models.IngestConfig) *Normalizer {
	radius := cfg.SyntheticRadius
	if radius <= 0 {
		radius = models.DefaultSyntheticRadius
	}
	return &Normalizer{
		Columns: cfg.Columns,
		Base:    cfg.BaseLocation(),
		Radius:  radius,
	}
}

// Normalize builds the record for fields. index and total position the
// record on the synthetic circle when the row carries no usable coordinates.
func (n *Normalizer) Normalize(id string, fields []string, index, total int) models.Restaurant {
	cols := n.Columns
	hours := field(fields, cols.Hours)
	opening, closing := ParseOperatingHours(hours)

	location, ok := n.sourceLocation(fields)
	if !ok {
		location = SyntheticLocation(n.Base, n.Radius, index, total)
	}

	return models.Restaurant{
		ID:          id,
		Name:        field(fields, cols.Name),
		Address:     field(fields, cols.Address),
		Phone:       field(fields, cols.Phone),
		Description: firstNonEmpty(field(fields, cols.Description), field(fields, cols.Summary), models.DefaultDescription),
		Cuisine:     primaryCuisine(field(fields, cols.Cuisine)),
		Rating:      parseRating(field(fields, cols.Rating)),
		PriceTier:   BucketPrice(field(fields, cols.PriceRange)),
		OpenTime:    opening,
		CloseTime:   closing,
		HoursRaw:    hours,
		Coordinates: location,
	}
}

func (n *Normalizer) sourceLocation(fields []string) (models.Location, bool) {
	latText := field(fields, n.Columns.Latitude)
	lonText := field(fields, n.Columns.Longitude)
	if latText == "" || lonText == "" {
		return models.Location{}, false
	}
	lat, err := strconv.ParseFloat(latText, 64)
	if err != nil {
		return models.Location{}, false
	}
	lon, err := strconv.ParseFloat(lonText, 64)
	if err != nil {
		return models.Location{}, false
	}
	loc := models.Location{Lat: lat, Lon: lon}
	return loc, loc.Valid()
}

// primaryCuisine keeps the first of slash-separated labels.
func primaryCuisine(cuisine string) string {
	first, _, _ := strings.Cut(cuisine, "/")
	if first = strings.TrimSpace(first); first == "" {
		return models.DefaultCuisine
	}
	return first
}

// parseRating reads the leading number of the field ("4.5 stars" is 4.5).
// Missing, unparsable, zero and negative ratings all fall back to the default.
func parseRating(rating string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(rating))
	if m == "" {
		return models.DefaultRating
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || v <= 0 {
		return models.DefaultRating
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
