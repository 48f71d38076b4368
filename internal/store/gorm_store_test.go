package store_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"order-demo-backend/internal/models"
	"order-demo-backend/internal/reservation"
	"order-demo-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openTestDB connects to the database named by TEST_DATABASE_DSN and skips
// the test when it is unset, so the unit suite stays runnable without
// Postgres.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set, skipping Postgres integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MenuItem{}))
	return db
}

func seedItem(t *testing.T, db *gorm.DB, item models.MenuItem) {
	t.Helper()
	require.NoError(t, db.Create(&item).Error)
	t.Cleanup(func() {
		db.Delete(&models.MenuItem{}, "id = ?", item.ID)
	})
}

func TestGormStore_Reads(t *testing.T) {
	db := openTestDB(t)
	st := store.NewGormStore(db)
	ctx := context.Background()

	seedItem(t, db, models.MenuItem{ID: "it-read", Name: "Read Item", Stock: 3})

	item, err := st.GetItem(ctx, "it-read")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Read Item", item.Name)
	assert.Equal(t, 3, item.Stock)

	missing, err := st.GetItem(ctx, "it-absent")
	require.NoError(t, err)
	assert.Nil(t, missing)

	items, err := st.ListItems(ctx)
	require.NoError(t, err)
	found := false
	for _, it := range items {
		if it.ID == "it-read" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGormStore_ConditionalDecrement(t *testing.T) {
	db := openTestDB(t)
	st := store.NewGormStore(db)
	ctx := context.Background()

	seedItem(t, db, models.MenuItem{ID: "it-dec", Name: "Decrement Item", Stock: 1})

	tx, err := st.Begin(ctx)
	require.NoError(t, err)
	affected, err := tx.DecrementStock("it-dec")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	require.NoError(t, tx.Commit())

	// Stock is now 0, so the predicate blocks the write.
	tx, err = st.Begin(ctx)
	require.NoError(t, err)
	affected, err = tx.DecrementStock("it-dec")
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	require.NoError(t, tx.Rollback())

	item, err := st.GetItem(ctx, "it-dec")
	require.NoError(t, err)
	assert.Equal(t, 0, item.Stock)
}

func TestGormStore_ConcurrentReservations(t *testing.T) {
	db := openTestDB(t)
	st := store.NewGormStore(db)
	svc := reservation.NewService(st)

	seedItem(t, db, models.MenuItem{ID: "it-race", Name: "Race Item", Stock: 1})

	const attempts = 4
	results := make([]reservation.Result, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.AttemptReserve(context.Background(), "it-race")
		}(i)
	}
	wg.Wait()

	reserved := 0
	for _, res := range results {
		switch res.Outcome {
		case reservation.OutcomeReserved:
			reserved++
		case reservation.OutcomeOutOfStock:
		default:
			t.Fatalf("unexpected outcome %q: %s", res.Outcome, res.Message)
		}
	}
	assert.Equal(t, 1, reserved)

	item, err := st.GetItem(context.Background(), "it-race")
	require.NoError(t, err)
	assert.Equal(t, 0, item.Stock, "stock must never go negative")
}
