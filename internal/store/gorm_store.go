package store

import (
	"context"
	"errors"
	"fmt"

	"order-demo-backend/internal/models"

	"gorm.io/gorm"
)

// GormStore implements Store on top of a shared *gorm.DB handle. The handle
// is owned by the caller; GormStore never opens or closes connections.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("listing menu items: %w", err)
	}
	return items, nil
}

func (s *GormStore) GetItem(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching menu item %s: %w", id, err)
	}
	return &item, nil
}

func (s *GormStore) Begin(ctx context.Context) (Tx, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("beginning transaction: %w", tx.Error)
	}
	return &gormTx{tx: tx}, nil
}

type gormTx struct {
	tx *gorm.DB
}

func (t *gormTx) GetItem(id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := t.tx.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching menu item %s in transaction: %w", id, err)
	}
	return &item, nil
}

func (t *gormTx) DecrementStock(id string) (int64, error) {
	// The stock > 0 predicate re-checks the precondition at write time, so
	// two transactions that both read stock = 1 cannot both decrement.
	res := t.tx.Model(&models.MenuItem{}).
		Where("id = ? AND stock > 0", id).
		UpdateColumn("stock", gorm.Expr("stock - 1"))
	if res.Error != nil {
		return 0, fmt.Errorf("decrementing stock for %s: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

func (t *gormTx) Commit() error {
	if err := t.tx.Commit().Error; err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (t *gormTx) Rollback() error {
	if err := t.tx.Rollback().Error; err != nil {
		return fmt.Errorf("rolling back transaction: %w", err)
	}
	return nil
}
