package menu

import (
	"context"

	"order-demo-backend/internal/models"
	"order-demo-backend/internal/store"
)

// Service is the read-only view of the catalog. It has no side effects and
// is safe for concurrent use.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// ListItems returns every menu item. An empty slice is a valid result and is
// distinct from a store failure.
func (s *Service) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	return items, nil
}

// GetItem returns the item with the given id, or (nil, nil) when no such
// item exists.
func (s *Service) GetItem(ctx context.Context, id string) (*models.MenuItem, error) {
	return s.store.GetItem(ctx, id)
}
