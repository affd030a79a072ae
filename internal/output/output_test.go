package output

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/chrisdamba/foodcatalog/internal/models"
)

func TestNewCatalogWriter_Unknown(t *testing.T) {
	_, err := NewCatalogWriter(context.Background(), "carrier-pigeon", &models.OutputConfig{}, nil)
	if err == nil {
		t.Fatal("expected error for unknown destination")
	}
}

func TestOpenDestinations(t *testing.T) {
	config := &models.OutputConfig{
		Destinations: []string{"json", " Console "},
		Path:         t.TempDir(),
	}
	dests, err := OpenDestinations(context.Background(), config, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(dests) != 2 {
		t.Fatalf("expected 2 destinations, got %d", len(dests))
	}
	if _, ok := dests[0].Writer.(*JSONOutput); !ok {
		t.Errorf("expected JSONOutput, got %T", dests[0].Writer)
	}
	if _, ok := dests[1].Writer.(*ConsoleOutput); !ok {
		t.Errorf("expected ConsoleOutput, got %T", dests[1].Writer)
	}
	if err := CloseAll(dests); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestOpenDestinations_Errors(t *testing.T) {
	if _, err := OpenDestinations(context.Background(), &models.OutputConfig{}, nil); err == nil {
		t.Error("expected error with no destinations")
	}

	config := &models.OutputConfig{Destinations: []string{"json", "bogus"}, Path: t.TempDir()}
	if _, err := OpenDestinations(context.Background(), config, nil); err == nil {
		t.Error("expected error for bogus destination")
	}
}

type failingCloser struct{ err error }

func (f failingCloser) WriteCatalog(context.Context, *models.Catalog) error { return nil }
func (f failingCloser) Close() error { return f.err }

func TestCloseAll_JoinsErrors(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")
	err := CloseAll([]Destination{
		{Name: "one", Writer: failingCloser{errA}},
		{Name: "two", Writer: failingCloser{nil}},
		{Name: "three", Writer: failingCloser{errB}},
	})
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("expected both errors, got %v", err)
	}
}

func TestJSONOutput_RoundTrip(t *testing.T) {
	out := NewJSONOutput(t.TempDir(), "catalogs")
	catalog := sampleCatalog()
	if err := out.WriteCatalog(context.Background(), catalog); err != nil {
		t.Fatalf("write: %v", err)
	}
	if filepath.Base(out.Path()) != "restaurants.json" {
		t.Fatalf("unexpected path %s", out.Path())
	}

	loaded, err := models.LoadCatalog(out.Path())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", loaded.Len())
	}
	if loaded.Restaurants[0] != catalog.Restaurants[0] {
		t.Errorf("record changed in round trip:\n got %+v\nwant %+v", loaded.Restaurants[0], catalog.Restaurants[0])
	}
	if loaded.Restaurants[1].PriceTier != models.PricePremium {
		t.Errorf("expected premium tier, got %v", loaded.Restaurants[1].PriceTier)
	}

	entries, _ := os.ReadDir(filepath.Dir(out.Path()))
	if len(entries) != 1 {
		t.Errorf("expected only the catalog file, found %d entries", len(entries))
	}
}

func TestEncodeCatalog_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeCatalog(&buf, &models.Catalog{}); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"restaurants\": []\n}\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
