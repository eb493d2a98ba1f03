package db

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"lostfound/internal/model"
)

// Models in dependency order: referenced tables first.
func models() []interface{} {
	return []interface{}{
		&model.Item{},
		&model.Owner{},
		&model.Ownership{},
		&model.Admin{},
	}
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Reset drops every table, link table first so foreign keys never block.
func Reset(db *gorm.DB) {
	tables := models()
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(tables[i]); err != nil {
			log.Printf("Warning: Failed to drop table (may not exist): %v", err)
		}
	}
}
