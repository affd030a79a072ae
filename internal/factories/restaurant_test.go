package factories

import (
	"bytes"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"testing"

	"github.com/chrisdamba/foodcatalog/internal/ingest"
	"github.com/chrisdamba/foodcatalog/internal/models"
)

func TestCreateRow_Deterministic(t *testing.T) {
	a := NewRestaurantRowFactory(7)
	b := NewRestaurantRowFactory(7)
	for i := 0; i < 20; i++ {
		rowA, rowB := a.CreateRow(), b.CreateRow()
		if !slices.Equal(rowA, rowB) {
			t.Fatalf("row %d differs for the same seed:\n%v\n%v", i, rowA, rowB)
		}
		if len(rowA) != len(Header) {
			t.Fatalf("expected %d columns, got %d", len(Header), len(rowA))
		}
	}
}

func TestCreateRow_PriceRangeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^(\$\d+-\d+)?$`)
	f := NewRestaurantRowFactory(1)
	for i := 0; i < 100; i++ {
		if price := f.CreateRow()[7]; !pattern.MatchString(price) {
			t.Fatalf("unexpected price range %q", price)
		}
	}
}

func TestWriteCSV_IngestsCleanly(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	if err := NewRestaurantRowFactory(42).WriteCSV(&buf, 25, func() { calls++ }); err != nil {
		t.Fatalf("write: %v", err)
	}
	if calls != 25 {
		t.Errorf("expected 25 progress callbacks, got %d", calls)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	builder := ingest.NewBuilder(models.DefaultIngestConfig(), logger)
	catalog, err := builder.Build(&buf)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if catalog.Len() != 25 {
		t.Fatalf("expected 25 records, got %d", catalog.Len())
	}

	clock := regexp.MustCompile(`^\d{2}:\d{2}$`)
	for _, r := range catalog.Restaurants {
		if r.Name == "" || r.Cuisine == "" || r.Description == "" {
			t.Errorf("record %s has empty required fields: %+v", r.ID, r)
		}
		if !clock.MatchString(r.OpenTime) || !clock.MatchString(r.CloseTime) {
			t.Errorf("record %s has bad hours %s-%s", r.ID, r.OpenTime, r.CloseTime)
		}
		if !r.PriceTier.Valid() || r.Rating <= 0 {
			t.Errorf("record %s has bad tier/rating: %v %v", r.ID, r.PriceTier, r.Rating)
		}
	}
}
