package favorites

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// MemoryStore holds favorites for the lifetime of one value. Create one per
// request or session; nothing is shared between instances. The zero value is
// an empty store ready to use.
type MemoryStore struct {
	mu        sync.RWMutex
	favorites map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{favorites: make(map[string][]string)}
}

func (s *MemoryStore) List(_ context.Context, userID string) ([]string, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.favorites[userID]), nil
}

func (s *MemoryStore) Add(_ context.Context, userID, restaurantID string) error {
	if err := validate(userID, restaurantID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.favorites == nil {
		s.favorites = make(map[string][]string)
	}
	if !slices.Contains(s.favorites[userID], restaurantID) {
		s.favorites[userID] = append(s.favorites[userID], restaurantID)
	}
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, userID, restaurantID string) error {
	if err := validate(userID, restaurantID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.favorites[userID]
	if i := slices.Index(ids, restaurantID); i >= 0 {
		s.favorites[userID] = slices.Delete(ids, i, i+1)
	}
	return nil
}
