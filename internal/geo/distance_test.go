package geo

import (
	"math"
	"testing"

	"github.com/chrisdamba/foodcatalog/internal/models"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	if d := Distance(models.HoustonCenter, models.HoustonCenter); d != 0 {
		t.Fatalf("expected 0, got %v", d)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]models.Location{
		{models.HoustonCenter, {Lat: 29.7384, Lon: -95.4624}},
		{{Lat: 51.5074, Lon: -0.1278}, {Lat: 40.7128, Lon: -74.0060}},
		{{Lat: -33.8688, Lon: 151.2093}, {Lat: 35.6762, Lon: 139.6503}},
	}
	for _, p := range pairs {
		ab, ba := Distance(p[0], p[1]), Distance(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("asymmetric distance for %v/%v: %v vs %v", p[0], p[1], ab, ba)
		}
	}
}

func TestDistance_OneDegreeOfLongitudeInHouston(t *testing.T) {
	east := models.Location{Lat: 29.7604, Lon: -95.3698 + 1}
	d := Distance(models.HoustonCenter, east)
	if math.Abs(d-96.4)/96.4 > 0.02 {
		t.Fatalf("expected about 96.4 km, got %v", d)
	}
}

func TestDistance_KnownCityPair(t *testing.T) {
	london := models.Location{Lat: 51.5074, Lon: -0.1278}
	paris := models.Location{Lat: 48.8566, Lon: 2.3522}
	d := Distance(london, paris)
	if d < 340 || d > 350 {
		t.Fatalf("expected London-Paris around 344 km, got %v", d)
	}
}

func TestFormatDistance(t *testing.T) {
	cases := map[float64]string{
		0:      "0m",
		0.25:   "250m",
		0.4996: "500m",
		1:      "1.0 km",
		3.456:  "3.5 km",
		12.04:  "12.0 km",
	}
	for km, want := range cases {
		if got := FormatDistance(km); got != want {
			t.Errorf("FormatDistance(%v) = %q, want %q", km, got, want)
		}
	}
}
