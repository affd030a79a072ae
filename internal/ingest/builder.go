// Package ingest turns raw restaurant listing exports into a normalized
// catalog: quote-aware field splitting, operating-hours parsing, price
// bucketing and synthetic placement for rows without coordinates.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chrisdamba/foodcatalog/internal/models"
	"github.com/lucsky/cuid"
)

// ErrSourceUnavailable is returned when the raw input cannot be read.
var ErrSourceUnavailable = errors.New("input source unavailable")

// Builder drives the Normalizer over every line of an export.
type Builder struct {
	normalizer *Normalizer
	hasHeader  bool
	logger     *slog.Logger
}

func NewBuilder(cfg models.IngestConfig, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		normalizer: NewNormalizer(cfg),
		hasHeader:  cfg.HasHeader,
		logger:     logger,
	}
}

// BuildLines builds a catalog from already-read lines. When the builder
// expects a header, the first non-blank line is it. Record ids are the
// 1-based position of the line among the lines after the header, blank lines
// included, so skipping a blank line never renumbers the rows after it.
func (b *Builder) BuildLines(lines []string) *models.Catalog {
	data := lines
	if b.hasHeader {
		data = nil
		for i, line := range lines {
			if strings.TrimSpace(line) != "" {
				data = lines[i+1:]
				break
			}
		}
	}

	total := len(data)
	restaurants := make([]models.Restaurant, 0, total)
	skipped := 0
	for i, line := range data {
		if strings.TrimSpace(line) == "" {
			skipped++
			continue
		}
		id := strconv.Itoa(i + 1)
		restaurants = append(restaurants, b.normalizer.Normalize(id, SplitFields(line), i, total))
	}

	catalog := &models.Catalog{
		RunID:       cuid.New(),
		BuiltAt:     time.Now().UTC(),
		Restaurants: restaurants,
	}
	b.logger.Info("catalog built",
		"run_id", catalog.RunID,
		"restaurants", len(restaurants),
		"blank_lines", skipped,
	)
	return catalog
}

// Build reads every line from r before normalizing, so a read failure never
// leaves a partial catalog behind. Lines may be of any length; a trailing
// "\r" is dropped.
func (b *Builder) Build(r io.Reader) (*models.Catalog, error) {
	reader := bufio.NewReader(r)

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}
	}
	return b.BuildLines(lines), nil
}

func (b *Builder) BuildFile(path string) (*models.Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer file.Close()

	b.logger.Debug("reading listing export", "path", path)
	return b.Build(file)
}
