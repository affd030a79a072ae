package output

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/chrisdamba/foodcatalog/internal/geo"
	"github.com/chrisdamba/foodcatalog/internal/models"
	"github.com/olivere/elastic/v7"
)

const indexMapping = `{
  "mappings": {
    "properties": {
      "id":          { "type": "keyword" },
      "position":    { "type": "integer" },
      "name":        { "type": "text" },
      "address":     { "type": "text" },
      "phone":       { "type": "keyword" },
      "description": { "type": "text" },
      "cuisine":     { "type": "keyword" },
      "rating":      { "type": "double" },
      "priceTier":   { "type": "keyword" },
      "openTime":    { "type": "keyword" },
      "closeTime":   { "type": "keyword" },
      "hoursRaw":    { "type": "text" },
      "synthetic":   { "type": "boolean" },
      "runId":       { "type": "keyword" },
      "location":    { "type": "geo_point" }
    }
  }
}`

// elasticDocument is a record as stored in the search index.
type elasticDocument struct {
	ID          string           `json:"id"`
	Position    int              `json:"position"`
	Name        string           `json:"name"`
	Address     string           `json:"address"`
	Phone       string           `json:"phone"`
	Description string           `json:"description"`
	Cuisine     string           `json:"cuisine"`
	Rating      float64          `json:"rating"`
	PriceTier   models.PriceTier `json:"priceTier"`
	OpenTime    string           `json:"openTime"`
	CloseTime   string           `json:"closeTime"`
	HoursRaw    string           `json:"hoursRaw,omitempty"`
	Synthetic   bool             `json:"synthetic"`
	RunID       string           `json:"runId,omitempty"`
	Location    elastic.GeoPoint `json:"location"`
}

func toDocument(runID string, position int, r models.Restaurant) elasticDocument {
	return elasticDocument{
		ID:          r.ID,
		Position:    position,
		Name:        r.Name,
		Address:     r.Address,
		Phone:       r.Phone,
		Description: r.Description,
		Cuisine:     r.Cuisine,
		Rating:      r.Rating,
		PriceTier:   r.PriceTier,
		OpenTime:    r.OpenTime,
		CloseTime:   r.CloseTime,
		HoursRaw:    r.HoursRaw,
		Synthetic:   r.Coordinates.Synthetic,
		RunID:       runID,
		Location:    elastic.GeoPoint{Lat: r.Coordinates.Lat, Lon: r.Coordinates.Lon},
	}
}

func (d elasticDocument) restaurant() models.Restaurant {
	return models.Restaurant{
		ID:          d.ID,
		Name:        d.Name,
		Address:     d.Address,
		Phone:       d.Phone,
		Description: d.Description,
		Cuisine:     d.Cuisine,
		Rating:      d.Rating,
		PriceTier:   d.PriceTier,
		OpenTime:    d.OpenTime,
		CloseTime:   d.CloseTime,
		HoursRaw:    d.HoursRaw,
		Coordinates: models.Location{Lat: d.Location.Lat, Lon: d.Location.Lon, Synthetic: d.Synthetic},
	}
}

// ElasticOutput indexes records with a geo_point location and answers
// proximity queries against that index.
type ElasticOutput struct {
	client *elastic.Client
	index  string
	logger *slog.Logger
}

func NewElasticOutput(ctx context.Context, config models.ElasticConfig, logger *slog.Logger) (*ElasticOutput, error) {
	client, err := elastic.NewClient(elastic.SetURL(config.URL), elastic.SetSniff(false))
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}
	es := &ElasticOutput{client: client, index: config.Index, logger: logger}
	if err := es.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return es, nil
}

func (es *ElasticOutput) ensureIndex(ctx context.Context) error {
	exists, err := es.client.IndexExists(es.index).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check index %s: %w", es.index, err)
	}
	if exists {
		return nil
	}
	created, err := es.client.CreateIndex(es.index).BodyString(indexMapping).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", es.index, err)
	}
	if !created.Acknowledged {
		es.logger.Warn("index creation was not acknowledged", "index", es.index)
	}
	return nil
}

// WriteCatalog indexes every record. When the catalog carries a run id,
// documents left over from earlier runs are deleted.
func (es *ElasticOutput) WriteCatalog(ctx context.Context, catalog *models.Catalog) error {
	if len(catalog.Restaurants) > 0 {
		bulk := es.client.Bulk().Index(es.index)
		for i, r := range catalog.Restaurants {
			bulk.Add(elastic.NewBulkIndexRequest().Id(r.ID).Doc(toDocument(catalog.RunID, i, r)))
		}
		resp, err := bulk.Do(ctx)
		if err != nil {
			return fmt.Errorf("bulk index failed: %w", err)
		}
		if failed := resp.Failed(); len(failed) > 0 {
			return fmt.Errorf("bulk index rejected %d of %d records: %s", len(failed), len(catalog.Restaurants), failed[0].Error.Reason)
		}
	}

	if catalog.RunID == "" {
		_, err := es.client.Refresh(es.index).Do(ctx)
		return err
	}
	stale := elastic.NewBoolQuery().MustNot(elastic.NewTermQuery("runId", catalog.RunID))
	if _, err := es.client.DeleteByQuery(es.index).Query(stale).Refresh("true").Do(ctx); err != nil {
		return fmt.Errorf("failed to remove stale records: %w", err)
	}
	return nil
}

// Nearby returns indexed records ordered by distance from location, within
// radiusKm when it is positive.
func (es *ElasticOutput) Nearby(ctx context.Context, location models.Location, radiusKm float64, limit int) ([]geo.Ranked, error) {
	var query elastic.Query = elastic.NewMatchAllQuery()
	if radiusKm > 0 {
		query = elastic.NewGeoDistanceQuery("location").
			Point(location.Lat, location.Lon).
			Distance(fmt.Sprintf("%gkm", radiusKm))
	}
	if limit <= 0 {
		limit = 10000
	}

	result, err := es.client.Search().
		Index(es.index).
		Query(query).
		SortBy(
			elastic.NewGeoDistanceSort("location").
				Point(location.Lat, location.Lon).
				Asc().
				Unit("km").
				DistanceType("arc"),
			elastic.NewFieldSort("position").Asc(),
		).
		Size(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("nearby search failed: %w", err)
	}

	ranked := make([]geo.Ranked, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		var doc elasticDocument
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			es.logger.Warn("skipping unreadable document", "id", hit.Id, "error", err)
			continue
		}
		r := doc.restaurant()
		ranked = append(ranked, geo.Ranked{Restaurant: r, DistanceKm: geo.Distance(location, r.Coordinates)})
	}
	return ranked, nil
}

func (es *ElasticOutput) Close() error {
	es.client.Stop()
	return nil
}
