// Package favorites keeps per-user lists of favorite restaurant ids.
package favorites

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrMissingUserID       = errors.New("user id is required")
	ErrMissingRestaurantID = errors.New("restaurant id is required")
)

// Store is implemented by every favorites backend. Add and Remove are
// idempotent and List returns ids in the order they were added.
type Store interface {
	List(ctx context.Context, userID string) ([]string, error)
	Add(ctx context.Context, userID, restaurantID string) error
	Remove(ctx context.Context, userID, restaurantID string) error
}

func validate(userID, restaurantID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrMissingUserID
	}
	if strings.TrimSpace(restaurantID) == "" {
		return ErrMissingRestaurantID
	}
	return nil
}
