// Package storetest provides an in-memory store.Store for service and
// gateway tests. Conditional decrements are applied atomically under one
// mutex, which models the read-committed-plus-guarded-write behavior the
// real store provides.
package storetest

import (
	"context"
	"errors"
	"sort"
	"sync"

	"order-demo-backend/internal/models"
	"order-demo-backend/internal/store"
)

type Fake struct {
	mu    sync.Mutex
	items map[string]models.MenuItem

	// Failure injection. A non-nil error makes the corresponding call fail.
	ListErr      error
	GetErr       error
	BeginErr     error
	TxGetErr     error
	DecrementErr error
	CommitErr    error
	RollbackErr  error

	BeginCalls int
	Commits    int
	Rollbacks  int
}

func New(items ...models.MenuItem) *Fake {
	f := &Fake{items: make(map[string]models.MenuItem, len(items))}
	for _, it := range items {
		f.items[it.ID] = it
	}
	return f
}

// Item returns the committed state of a row.
func (f *Fake) Item(id string) (models.MenuItem, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.items[id]
	return it, ok
}

func (f *Fake) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.MenuItem, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *Fake) GetItem(ctx context.Context, id string) (*models.MenuItem, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (f *Fake) Begin(ctx context.Context) (store.Tx, error) {
	f.mu.Lock()
	f.BeginCalls++
	f.mu.Unlock()
	if f.BeginErr != nil {
		return nil, f.BeginErr
	}
	return &fakeTx{f: f}, nil
}

type fakeTx struct {
	f *Fake

	closed        bool
	decrementedID string
	decremented   bool
}

func (t *fakeTx) GetItem(id string) (*models.MenuItem, error) {
	if t.f.TxGetErr != nil {
		return nil, t.f.TxGetErr
	}
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	it, ok := t.f.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (t *fakeTx) DecrementStock(id string) (int64, error) {
	if t.f.DecrementErr != nil {
		return 0, t.f.DecrementErr
	}
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	it, ok := t.f.items[id]
	if !ok || it.Stock <= 0 {
		return 0, nil
	}
	it.Stock--
	t.f.items[id] = it
	t.decrementedID = id
	t.decremented = true
	return 1, nil
}

func (t *fakeTx) Commit() error {
	if t.closed {
		return errors.New("transaction already closed")
	}
	t.closed = true
	if t.f.CommitErr != nil {
		t.revert()
		return t.f.CommitErr
	}
	t.f.mu.Lock()
	t.f.Commits++
	t.f.mu.Unlock()
	return nil
}

func (t *fakeTx) Rollback() error {
	if t.closed {
		return errors.New("transaction already closed")
	}
	t.closed = true
	t.revert()
	t.f.mu.Lock()
	t.f.Rollbacks++
	t.f.mu.Unlock()
	return t.f.RollbackErr
}

func (t *fakeTx) revert() {
	if !t.decremented {
		return
	}
	t.f.mu.Lock()
	it := t.f.items[t.decrementedID]
	it.Stock++
	t.f.items[t.decrementedID] = it
	t.f.mu.Unlock()
	t.decremented = false
}
