package favorites

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Favorite is one saved (user, restaurant) pair.
type Favorite struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"not null;uniqueIndex:idx_favorite_user_restaurant"`
	RestaurantID string    `json:"restaurant_id" gorm:"not null;uniqueIndex:idx_favorite_user_restaurant"`
	CreatedAt    time.Time `json:"created_at"`
}

// GormStore persists favorites in a SQL database through gorm.
type GormStore struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) a SQLite favorites database at dsn.
func OpenSQLite(dsn string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open favorites database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite has a single writer, and every connection to ":memory:" is a
	// separate database.
	sqlDB.SetMaxOpenConns(1)
	return NewGormStore(db)
}

// NewGormStore migrates the favorites table on db.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Favorite{}); err != nil {
		return nil, fmt.Errorf("failed to migrate favorites: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) List(ctx context.Context, userID string) ([]string, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&Favorite{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("restaurant_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return ids, nil
}

func (s *GormStore) Add(ctx context.Context, userID, restaurantID string) error {
	if err := validate(userID, restaurantID); err != nil {
		return err
	}
	fav := Favorite{UserID: userID, RestaurantID: restaurantID}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&fav).Error
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (s *GormStore) Remove(ctx context.Context, userID, restaurantID string) error {
	if err := validate(userID, restaurantID); err != nil {
		return err
	}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&Favorite{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
