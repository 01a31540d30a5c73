package timestamps

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/killallgit/catalog-api/internal/models"
)

// MemoryStore keeps timestamps in memory only, scoped to process lifetime.
// It preserves the behavior of the original ephemeral bookmark flow while
// sharing the Service (and so the validation rules) with the durable store.
type MemoryStore struct {
	mu     sync.RWMutex
	items  map[uint]models.Timestamp
	nextID uint
}

// NewMemoryStore creates an empty in-memory timestamp store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items:  make(map[uint]models.Timestamp),
		nextID: 1,
	}
}

// CreateTimestamp assigns an ID and UUID and stores a copy
func (s *MemoryStore) CreateTimestamp(ctx context.Context, timestamp *models.Timestamp) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	timestamp.ID = s.nextID
	s.nextID++
	if timestamp.UUID == "" {
		timestamp.UUID = uuid.New().String()
	}
	now := time.Now().UTC()
	timestamp.CreatedAt = now
	timestamp.UpdatedAt = now

	s.items[timestamp.ID] = *timestamp
	return nil
}

// GetTimestampByID retrieves a timestamp by its ID
func (s *MemoryStore) GetTimestampByID(ctx context.Context, id uint) (*models.Timestamp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

// ListByVideoID retrieves a video's timestamps ordered by time ascending.
// Ties keep insertion order, matching the database store's ordering.
func (s *MemoryStore) ListByVideoID(ctx context.Context, videoID uint) ([]models.Timestamp, error) {
	s.mu.RLock()
	result := make([]models.Timestamp, 0)
	for _, item := range s.items {
		if item.VideoID == videoID {
			result = append(result, item)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Time != result[j].Time {
			return result[i].Time < result[j].Time
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// UpdateTimestamp replaces a stored timestamp
func (s *MemoryStore) UpdateTimestamp(ctx context.Context, timestamp *models.Timestamp) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[timestamp.ID]; !ok {
		return ErrNotFound
	}
	timestamp.UpdatedAt = time.Now().UTC()
	s.items[timestamp.ID] = *timestamp
	return nil
}

// DeleteTimestamp removes a timestamp by its ID
func (s *MemoryStore) DeleteTimestamp(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}
