package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "task-time-tracker.com/task-time-tracker/internal/models"
)

// NewDatabase opens the configured store, migrates the schema and seeds the
// default BAS accounts. Safe to call repeatedly: tables are created only if
// absent and the seed runs only on an empty bas_accounts table.
func NewDatabase(cfg Config) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	if dsn, ok := cfg.PostgresDSN(); ok {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.SqliteDSN), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}

// Migrate creates the schema if absent and seeds the default chart of
// accounts into an empty bas_accounts table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Task{}, &model.TimeEntry{}, &model.BasAccount{}); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&model.BasAccount{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		seed := model.DefaultAccounts()
		if err := db.Create(&seed).Error; err != nil {
			return err
		}
	}

	return nil
}
