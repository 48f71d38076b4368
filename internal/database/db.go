package database

import (
	"fmt"
	"log"

	"order-demo-backend/internal/config"
	"order-demo-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres and runs the schema migration. The returned
// handle is the process-wide connection pool; callers own its lifecycle and
// must fail fast when Open errors.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.AutoMigrate(&models.MenuItem{}); err != nil {
		return nil, fmt.Errorf("running migration: %w", err)
	}

	log.Println("Database connection established, migration complete.")
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("getting underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

func strptr(s string) *string { return &s }

// SeedDemoMenu inserts the demo catalog, but only into an empty table so an
// administered database is never touched.
func SeedDemoMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting menu items: %w", err)
	}
	if count > 0 {
		return nil
	}

	items := []models.MenuItem{
		{ID: "butterburger", Name: "ButterBurger", Description: strptr("The signature burger on a lightly buttered, toasted bun."), Stock: 20},
		{ID: "cheese-curds", Name: "Cheese Curds", Description: strptr("Wisconsin white cheddar cheese curds, fried golden."), Stock: 15},
		{ID: "frozen-custard", Name: "Frozen Custard", Description: strptr("Fresh frozen custard, churned daily."), Stock: 25},
		{ID: "crinkle-fries", Name: "Crinkle Cut Fries", Description: nil, Stock: 30},
		{ID: "onion", Name: "Onion", Description: strptr("Crispy onion rings."), Stock: 1},
	}

	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("seeding demo menu: %w", err)
	}

	log.Printf("Seeded %d demo menu items.", len(items))
	return nil
}
