package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chrisdamba/foodcatalog/internal/models"
)

const catalogFileName = "restaurants.json"

// JSONOutput writes the catalog document to <path>/<folder>/restaurants.json.
type JSONOutput struct {
	basePath string
	folder   string
}

func NewJSONOutput(basePath, folder string) *JSONOutput {
	return &JSONOutput{basePath: basePath, folder: folder}
}

// Path is the file the catalog is written to.
func (j *JSONOutput) Path() string {
	return filepath.Join(j.basePath, j.folder, catalogFileName)
}

// EncodeCatalog writes {"restaurants": [...]} with two-space indentation.
func EncodeCatalog(w io.Writer, catalog *models.Catalog) error {
	if catalog == nil || catalog.Restaurants == nil {
		catalog = &models.Catalog{Restaurants: []models.Restaurant{}}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(catalog)
}

func (j *JSONOutput) WriteCatalog(_ context.Context, catalog *models.Catalog) error {
	path := j.Path()
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	// write to a sibling file first so readers never see a partial catalog
	tmp, err := os.CreateTemp(filepath.Dir(path), ".restaurants-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := EncodeCatalog(tmp, catalog); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (j *JSONOutput) Close() error {
	return nil
}
