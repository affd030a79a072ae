package geo

import (
	"errors"
	"testing"

	"github.com/chrisdamba/foodcatalog/internal/models"
)

func testCatalog() *models.Catalog {
	return &models.Catalog{Restaurants: []models.Restaurant{
		{ID: "1", Name: "Downtown Diner", Coordinates: models.Location{Lat: 29.7589, Lon: -95.3677}},
		{ID: "2", Name: "Galleria Grill", Coordinates: models.Location{Lat: 29.7390, Lon: -95.4630}},
		{ID: "3", Name: "Heights Hub", Coordinates: models.Location{Lat: 29.8030, Lon: -95.4100}},
	}}
}

func TestResolveDistanceRank_ByAddress(t *testing.T) {
	ranked, err := ResolveDistanceRank(testCatalog(), NearAddress("shopping at the galleria"), nil)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if ranked[0].Restaurant.Name != "Galleria Grill" {
		t.Fatalf("expected Galleria Grill first, got %s", ranked[0].Restaurant.Name)
	}
}

func TestResolveDistanceRank_ByCoordinate(t *testing.T) {
	ranked, err := ResolveDistanceRank(testCatalog(), AtLocation(models.Location{Lat: 29.80, Lon: -95.41}), nil)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if ranked[0].Restaurant.Name != "Heights Hub" {
		t.Fatalf("expected Heights Hub first, got %s", ranked[0].Restaurant.Name)
	}
}

func TestResolveDistanceRank_CoordinateWinsOverAddress(t *testing.T) {
	q := AtLocation(models.Location{Lat: 29.80, Lon: -95.41})
	q.Address = "galleria"
	ranked, err := ResolveDistanceRank(testCatalog(), q, nil)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if ranked[0].Restaurant.Name != "Heights Hub" {
		t.Fatalf("expected coordinate to take precedence, got %s", ranked[0].Restaurant.Name)
	}
}

func TestResolveDistanceRank_MissingQuery(t *testing.T) {
	lat := 29.7
	for _, q := range []Query{{}, {Address: "   "}, {Latitude: &lat}} {
		if _, err := ResolveDistanceRank(testCatalog(), q, nil); !errors.Is(err, ErrMissingQuery) {
			t.Errorf("expected ErrMissingQuery for %+v, got %v", q, err)
		}
	}
}

func TestResolveDistanceRank_InvalidCoordinate(t *testing.T) {
	_, err := ResolveDistanceRank(testCatalog(), AtLocation(models.Location{Lat: 120, Lon: 0}), nil)
	if !errors.Is(err, ErrInvalidCoordinate) {
		t.Fatalf("expected ErrInvalidCoordinate, got %v", err)
	}
}

func TestResolveDistanceRank_UnknownAddressUsesFallback(t *testing.T) {
	ranked, err := ResolveDistanceRank(testCatalog(), NearAddress("Narnia"), nil)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if ranked[0].Restaurant.Name != "Downtown Diner" {
		t.Fatalf("expected Downtown Diner nearest the city center, got %s", ranked[0].Restaurant.Name)
	}
}
