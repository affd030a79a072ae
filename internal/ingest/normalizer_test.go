package ingest

import (
	"testing"

	"github.com/chrisdamba/foodcatalog/internal/models"
)

const spiceRoute = `Spice Route,"123 Main St, Houston, TX 77002",(713) 555-0100,"Mon-Fri 11AM-9PM, Sat-Sun 12PM-10PM",Indian/Pakistani,x,Casual spot,$10-20,4.6 stars,y,Family-owned curry house`

func TestNormalize_FullRow(t *testing.T) {
	n := NewNormalizer(models.DefaultIngestConfig())
	r := n.Normalize("7", SplitFields(spiceRoute), 0, 1)

	if r.ID != "7" {
		t.Errorf("expected id 7, got %s", r.ID)
	}
	if r.Name != "Spice Route" {
		t.Errorf("unexpected name %q", r.Name)
	}
	if r.Address != "123 Main St, Houston, TX 77002" {
		t.Errorf("unexpected address %q", r.Address)
	}
	if r.Phone != "(713) 555-0100" {
		t.Errorf("unexpected phone %q", r.Phone)
	}
	if r.Cuisine != "Indian" {
		t.Errorf("expected primary cuisine Indian, got %q", r.Cuisine)
	}
	if r.Rating != 4.6 {
		t.Errorf("expected rating 4.6, got %v", r.Rating)
	}
	if r.PriceTier != models.PriceModerate {
		t.Errorf("expected Moderate, got %v", r.PriceTier)
	}
	if r.OpenTime != "11:00" || r.CloseTime != "22:00" {
		t.Errorf("unexpected hours %s-%s", r.OpenTime, r.CloseTime)
	}
	if r.HoursRaw != "Mon-Fri 11AM-9PM, Sat-Sun 12PM-10PM" {
		t.Errorf("expected raw hours preserved, got %q", r.HoursRaw)
	}
	if r.Description != "Family-owned curry house" {
		t.Errorf("unexpected description %q", r.Description)
	}
	if !r.Coordinates.Synthetic {
		t.Error("expected synthetic coordinates when no coordinate columns are configured")
	}
}

func TestNormalize_ShortRowUsesDefaults(t *testing.T) {
	n := NewNormalizer(models.DefaultIngestConfig())
	r := n.Normalize("1", SplitFields("Taco Stand"), 0, 1)

	if r.Name != "Taco Stand" {
		t.Errorf("unexpected name %q", r.Name)
	}
	if r.Address != "" || r.Phone != "" || r.HoursRaw != "" {
		t.Errorf("expected empty address/phone/hours, got %q %q %q", r.Address, r.Phone, r.HoursRaw)
	}
	if r.Cuisine != models.DefaultCuisine {
		t.Errorf("expected default cuisine, got %q", r.Cuisine)
	}
	if r.Rating != models.DefaultRating {
		t.Errorf("expected default rating, got %v", r.Rating)
	}
	if r.PriceTier != models.PriceModerate {
		t.Errorf("expected Moderate, got %v", r.PriceTier)
	}
	if r.OpenTime != models.DefaultOpenTime || r.CloseTime != models.DefaultCloseTime {
		t.Errorf("expected default hours, got %s-%s", r.OpenTime, r.CloseTime)
	}
	if r.Description != models.DefaultDescription {
		t.Errorf("expected default description, got %q", r.Description)
	}
}

func TestNormalize_SummaryDescriptionFallback(t *testing.T) {
	n := NewNormalizer(models.DefaultIngestConfig())
	r := n.Normalize("1", SplitFields("Pho Real,,,,Vietnamese,,Noodle bar,$5-10,4.2"), 0, 1)
	if r.Description != "Noodle bar" {
		t.Errorf("expected summary column as description, got %q", r.Description)
	}
	if r.PriceTier != models.PriceBudget {
		t.Errorf("expected Budget, got %v", r.PriceTier)
	}
}

func TestNormalize_SourceCoordinates(t *testing.T) {
	cfg := models.DefaultIngestConfig()
	cfg.Columns.Latitude = 11
	cfg.Columns.Longitude = 12
	n := NewNormalizer(cfg)

	r := n.Normalize("1", SplitFields(spiceRoute+",29.7384,-95.4624"), 0, 1)
	want := models.Location{Lat: 29.7384, Lon: -95.4624}
	if r.Coordinates != want {
		t.Errorf("expected source coordinates %v, got %v", want, r.Coordinates)
	}

	r = n.Normalize("2", SplitFields(spiceRoute+",not-a-number,-95.4624"), 0, 1)
	if !r.Coordinates.Synthetic {
		t.Errorf("expected synthetic fallback for bad latitude, got %v", r.Coordinates)
	}

	r = n.Normalize("3", SplitFields(spiceRoute+",129.7,-95.4"), 0, 1)
	if !r.Coordinates.Synthetic {
		t.Errorf("expected synthetic fallback for out-of-range latitude, got %v", r.Coordinates)
	}
}

func TestPrimaryCuisine(t *testing.T) {
	cases := map[string]string{
		"Mexican/Tex-Mex":     "Mexican",
		"Thai / Lao":          "Thai",
		"Italian":             "Italian",
		"":                    models.DefaultCuisine,
		"/Seafood":            models.DefaultCuisine,
		"Korean/Japanese/BBQ": "Korean",
	}
	for in, want := range cases {
		if got := primaryCuisine(in); got != want {
			t.Errorf("primaryCuisine(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseRating(t *testing.T) {
	cases := map[string]float64{
		"4.5":       4.5,
		"4.5 stars": 4.5,
		" 3 ":       3,
		".5":        0.5,
		"":          models.DefaultRating,
		"N/A":       models.DefaultRating,
		"0":         models.DefaultRating,
		"-2":        models.DefaultRating,
	}
	for in, want := range cases {
		if got := parseRating(in); got != want {
			t.Errorf("parseRating(%q) = %v, want %v", in, got, want)
		}
	}
}
