package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/chrisdamba/foodcatalog/internal/geo"
	"github.com/chrisdamba/foodcatalog/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
    CREATE EXTENSION IF NOT EXISTS postgis;
    CREATE TABLE IF NOT EXISTS restaurants (
        id          TEXT PRIMARY KEY,
        position    INTEGER NOT NULL,
        name        TEXT NOT NULL,
        address     TEXT NOT NULL,
        phone       TEXT NOT NULL,
        description TEXT NOT NULL,
        cuisine     TEXT NOT NULL,
        rating      DOUBLE PRECISION NOT NULL,
        price_tier  SMALLINT NOT NULL,
        open_time   TEXT NOT NULL,
        close_time  TEXT NOT NULL,
        hours_raw   TEXT NOT NULL DEFAULT '',
        synthetic   BOOLEAN NOT NULL DEFAULT FALSE,
        location    GEOGRAPHY(Point, 4326) NOT NULL
    );
    CREATE INDEX IF NOT EXISTS restaurants_location_idx ON restaurants USING GIST (location);
`

const selectColumns = `
            id, name, address, phone, description, cuisine, rating, price_tier,
            open_time, close_time, hours_raw, synthetic,
            ST_X(location::geometry) AS longitude, ST_Y(location::geometry) AS latitude`

const insertRestaurant = `
        INSERT INTO restaurants (
            id, position, name, address, phone, description, cuisine, rating,
            price_tier, open_time, close_time, hours_raw, synthetic, location
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
            ST_SetSRID(ST_MakePoint($14, $15), 4326)::geography
        )
        ON CONFLICT (id) DO UPDATE SET
            position = EXCLUDED.position,
            name = EXCLUDED.name,
            address = EXCLUDED.address,
            phone = EXCLUDED.phone,
            description = EXCLUDED.description,
            cuisine = EXCLUDED.cuisine,
            rating = EXCLUDED.rating,
            price_tier = EXCLUDED.price_tier,
            open_time = EXCLUDED.open_time,
            close_time = EXCLUDED.close_time,
            hours_raw = EXCLUDED.hours_raw,
            synthetic = EXCLUDED.synthetic,
            location = EXCLUDED.location
    `

// RestaurantRepository stores catalog records in PostGIS.
type RestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{pool: pool}
}

func (r *RestaurantRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, schema)
	return err
}

// insertArgs lays out one record in insertRestaurant parameter order.
func insertArgs(restaurant models.Restaurant, position int) []interface{} {
	return []interface{}{
		restaurant.ID,
		position,
		restaurant.Name,
		restaurant.Address,
		restaurant.Phone,
		restaurant.Description,
		restaurant.Cuisine,
		restaurant.Rating,
		int16(restaurant.PriceTier),
		restaurant.OpenTime,
		restaurant.CloseTime,
		restaurant.HoursRaw,
		restaurant.Coordinates.Synthetic,
		restaurant.Coordinates.Lon,
		restaurant.Coordinates.Lat,
	}
}

// ReplaceAll clears the table and inserts every record in one transaction,
// keeping catalog order in the position column.
func (r *RestaurantRepository) ReplaceAll(ctx context.Context, restaurants []models.Restaurant) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM restaurants"); err != nil {
		return fmt.Errorf("failed to clear restaurants: %w", err)
	}
	if err := insertAll(ctx, tx, restaurants); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertAll(ctx context.Context, tx pgx.Tx, restaurants []models.Restaurant) error {
	if len(restaurants) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i, restaurant := range restaurants {
		batch.Queue(insertRestaurant, insertArgs(restaurant, i)...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert restaurants: %w", err)
	}
	return nil
}

// nearbyQuery builds the ranked proximity query. $1/$2 are the query
// longitude and latitude.
func nearbyQuery(radiusKm float64, limit int) (string, []interface{}) {
	var b strings.Builder
	b.WriteString(`
        SELECT ` + selectColumns + `,
            ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) AS distance
        FROM restaurants`)
	args := []interface{}{nil, nil}
	if radiusKm > 0 {
		args = append(args, radiusKm*1000)
		fmt.Fprintf(&b, `
        WHERE ST_DWithin(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $%d)`, len(args))
	}
	b.WriteString(`
        ORDER BY distance, position`)
	if limit > 0 {
		args = append(args, limit)
		fmt.Fprintf(&b, `
        LIMIT $%d`, len(args))
	}
	return b.String(), args
}

func (r *RestaurantRepository) FindNearby(ctx context.Context, location models.Location, radiusKm float64, limit int) ([]geo.Ranked, error) {
	query, args := nearbyQuery(radiusKm, limit)
	args[0], args[1] = location.Lon, location.Lat

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranked []geo.Ranked
	for rows.Next() {
		var restaurant models.Restaurant
		var tier int16
		var lon, lat, meters float64
		err := rows.Scan(append(restaurantFields(&restaurant, &tier), &lon, &lat, &meters)...)
		if err != nil {
			return nil, err
		}
		restaurant.PriceTier = models.PriceTier(tier)
		restaurant.Coordinates.Lon, restaurant.Coordinates.Lat = lon, lat
		ranked = append(ranked, geo.Ranked{Restaurant: restaurant, DistanceKm: meters / 1000})
	}
	return ranked, rows.Err()
}

func (r *RestaurantRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM restaurants").Scan(&count)
	return count, err
}

// restaurantFields returns scan targets for every selectColumns entry except
// the two coordinates.
func restaurantFields(restaurant *models.Restaurant, tier *int16) []interface{} {
	return []interface{}{
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Address,
		&restaurant.Phone,
		&restaurant.Description,
		&restaurant.Cuisine,
		&restaurant.Rating,
		tier,
		&restaurant.OpenTime,
		&restaurant.CloseTime,
		&restaurant.HoursRaw,
		&restaurant.Coordinates.Synthetic,
	}
}
