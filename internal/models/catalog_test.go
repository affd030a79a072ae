package models

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const catalogDoc = `{
  "restaurants": [
    {"id": "1", "name": "Spice Route", "priceTier": "$$", "openTime": "11:00", "closeTime": "22:00",
     "coordinates": {"latitude": 29.76, "longitude": -95.37, "synthetic": true}},
    {"id": "3", "name": "Bayou Bistro", "priceTier": "Premium", "openTime": "17:00", "closeTime": "23:30",
     "coordinates": {"latitude": 29.73, "longitude": -95.52}}
  ]
}`

func TestDecodeCatalog(t *testing.T) {
	c, err := DecodeCatalog(strings.NewReader(catalogDoc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", c.Len())
	}
	r, ok := c.Find("3")
	if !ok || r.Name != "Bayou Bistro" || r.PriceTier != PricePremium {
		t.Errorf("unexpected record %+v", r)
	}
	if r.Coordinates.Synthetic {
		t.Error("expected parsed coordinates")
	}
	if _, ok := c.Find("2"); ok {
		t.Error("found a record that does not exist")
	}
}

func TestDecodeCatalog_Invalid(t *testing.T) {
	if _, err := DecodeCatalog(strings.NewReader(`{"restaurants": [{"priceTier": "$$$$$"}]}`)); err == nil {
		t.Error("expected error for bad price tier")
	}
	if _, err := DecodeCatalog(strings.NewReader(`not json`)); err == nil {
		t.Error("expected error for bad document")
	}
}

func TestDecodeCatalog_RejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{"missing price tier", `{"id": "1", "openTime": "11:00", "closeTime": "22:00"}`},
		{"unpadded hour", `{"id": "1", "priceTier": "$", "openTime": "9:00", "closeTime": "22:00"}`},
		{"hour out of range", `{"id": "1", "priceTier": "$", "openTime": "11:00", "closeTime": "24:00"}`},
		{"missing close time", `{"id": "1", "priceTier": "$", "openTime": "11:00"}`},
		{"latitude out of range", `{"id": "1", "priceTier": "$", "openTime": "11:00", "closeTime": "22:00", "coordinates": {"latitude": 91, "longitude": 0}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCatalog(strings.NewReader(`{"restaurants": [` + tt.record + `]}`))
			if !errors.Is(err, ErrInvalidRecord) {
				t.Fatalf("expected ErrInvalidRecord, got %v", err)
			}
		})
	}
}

func TestValidClock(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"00:00", true},
		{"23:59", true},
		{"11:30", true},
		{"24:00", false},
		{"12:60", false},
		{"9:30", false},
		{"09-30", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidClock(tt.in); got != tt.want {
			t.Errorf("ValidClock(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurants.json")
	if err := os.WriteFile(path, []byte(catalogDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Restaurants[0].Coordinates.Lon != -95.37 {
		t.Errorf("unexpected coordinates %+v", c.Restaurants[0].Coordinates)
	}

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCatalog_NilSafe(t *testing.T) {
	var c *Catalog
	if c.Len() != 0 {
		t.Error("nil catalog should be empty")
	}
	if _, ok := c.Find("1"); ok {
		t.Error("nil catalog should find nothing")
	}
}
