// Package database keeps scheduled tasks and upload history in a local
// sqlite file.
package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InMemory opens a database that lives as long as the connection
const InMemory = ":memory:"

// Open opens (or creates) the database at path and migrates the schema
func Open(path string) (*gorm.DB, error) {
	if path != InMemory {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite: single writer, and one connection keeps :memory: alive
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&ScheduledTask{}, &UploadRecord{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
