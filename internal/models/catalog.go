package models

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Catalog is the ordered snapshot produced by one ingestion run. It is
// treated as read-only by every consumer.
type Catalog struct {
	RunID       string       `json:"-"`
	BuiltAt     time.Time    `json:"-"`
	Restaurants []Restaurant `json:"restaurants"`
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Restaurants)
}

// Find returns the record with the given id.
func (c *Catalog) Find(id string) (Restaurant, bool) {
	if c == nil {
		return Restaurant{}, false
	}
	for _, r := range c.Restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return Restaurant{}, false
}

// DecodeCatalog reads the {"restaurants": [...]} document and rejects it
// when any record is invalid.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	var catalog Catalog
	if err := json.NewDecoder(r).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for _, restaurant := range catalog.Restaurants {
		if err := restaurant.Validate(); err != nil {
			return nil, fmt.Errorf("decode catalog: %w", err)
		}
	}
	return &catalog, nil
}

// LoadCatalog reads a catalog previously written by the JSON output.
func LoadCatalog(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DecodeCatalog(file)
}
