package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/chrisdamba/foodcatalog/internal/models"
)

// ConsoleOutput prints one JSON line per record, prefixed with the topic.
type ConsoleOutput struct {
	w io.Writer
}

func NewConsoleOutput(w io.Writer) *ConsoleOutput {
	return &ConsoleOutput{w: w}
}

func (c *ConsoleOutput) WriteCatalog(ctx context.Context, catalog *models.Catalog) error {
	for _, r := range catalog.Restaurants {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg, err := json.Marshal(r)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.w, "[restaurants] %s\n", msg); err != nil {
			return fmt.Errorf("failed to write to console: %w", err)
		}
	}
	return nil
}

func (c *ConsoleOutput) Close() error {
	return nil
}
