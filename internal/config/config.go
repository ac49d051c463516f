package config

import (
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DBPath returns the sqlite file the clinic runs on. Backup/restore copy this
// file directly, so everything must go through the same path.
func DBPath() string {
	if p := os.Getenv("CLINIC_DB_PATH"); p != "" {
		return p
	}
	return filepath.Join("data", "clinic.db")
}

func ServerAddr() string {
	if addr := os.Getenv("CLINIC_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}

func IsProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}

func InitDB() *gorm.DB {
	path := DBPath()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("failed to create database directory %s: %v", dir, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to open database %s: %v", path, err)
	}
	return db
}
