package database

import (
	"os"
	"testing"

	"order-demo-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestSeedDemoMenuIsNoOpOnNonEmptyTable(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set, skipping Postgres integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MenuItem{}))

	item := models.MenuItem{ID: "it-seed-guard", Name: "Seed Guard", Stock: 1}
	require.NoError(t, db.Create(&item).Error)
	t.Cleanup(func() {
		db.Delete(&models.MenuItem{}, "id = ?", item.ID)
	})

	var before int64
	require.NoError(t, db.Model(&models.MenuItem{}).Count(&before).Error)

	require.NoError(t, SeedDemoMenu(db))

	var after int64
	require.NoError(t, db.Model(&models.MenuItem{}).Count(&after).Error)
	assert.Equal(t, before, after, "seed must not touch an administered table")
}
