// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/amrhamedpage/shams-web-platform/internal/domain/product"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	models := []interface{}{
		&product.Category{},
		&product.SubCategory{},
		&product.Product{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	log.Println("✅ Database migrations completed")
	return nil
}

// CreateIndexes creates additional indexes not covered by model tags
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category_featured ON products (category, is_featured)",
		"CREATE INDEX IF NOT EXISTS idx_products_category_new ON products (category, is_new)",
	}

	for _, idx := range indexes {
		if err := m.db.Exec(idx).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// SeedInitialData loads the fixture catalog into an empty database so the
// storefront has browsable content out of the box
func (m *Migration) SeedInitialData() error {
	var productCount int64
	if err := m.db.Model(&product.Product{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}

	if productCount == 0 {
		log.Println("🌱 Seeding fixture products...")
		for _, p := range product.FixtureProducts() {
			if err := m.db.Create(&p).Error; err != nil {
				return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
			}
		}
	}

	var categoryCount int64
	if err := m.db.Model(&product.Category{}).Count(&categoryCount).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}

	if categoryCount == 0 {
		log.Println("🌱 Seeding category tree...")
		for _, c := range product.FixtureCategories() {
			if err := m.db.Create(&c).Error; err != nil {
				return fmt.Errorf("failed to seed category %s: %w", c.ID, err)
			}
		}
	}

	return nil
}
