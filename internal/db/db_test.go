package db

import (
	"testing"

	"github.com/verdantgarden/verdant/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestInitDBUnsupportedType(t *testing.T) {
	if err := InitDB("postgres", "ignored"); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestSetDBAndGetDB(t *testing.T) {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	SetDB(database)
	if GetDB() != database {
		t.Error("GetDB did not return the handle set by SetDB")
	}
}

func TestMigratedModels(t *testing.T) {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := database.AutoMigrate(
		&models.User{},
		&models.Garden{},
		&models.GardenUser{},
		&models.Theme{},
	); err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	for _, table := range []string{"users", "gardens", "garden_users", "themes"} {
		if !database.Migrator().HasTable(table) {
			t.Errorf("table %s not created", table)
		}
	}
}
