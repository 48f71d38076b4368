package store

import (
	"context"

	"order-demo-backend/internal/models"
)

// Store is the data-access contract shared by the menu and reservation
// services. GetItem returns (nil, nil) when no row matches; an error always
// means the store itself failed, never "not found".
type Store interface {
	ListItems(ctx context.Context) ([]models.MenuItem, error)
	GetItem(ctx context.Context, id string) (*models.MenuItem, error)
	Begin(ctx context.Context) (Tx, error)
}

// Tx is one transactional scope. Exactly one of Commit or Rollback must be
// called; after either, the Tx is dead.
type Tx interface {
	GetItem(id string) (*models.MenuItem, error)

	// DecrementStock decrements the item's stock by one only while the row
	// still has stock > 0, and reports how many rows were affected. Zero
	// affected rows means a concurrent transaction exhausted the stock
	// between our read and this write.
	DecrementStock(id string) (int64, error)

	Commit() error
	Rollback() error
}
