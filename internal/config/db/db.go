package db

import (
	"database/sql"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/farmart-ke/farmart-backend/internal/config"
)

var DB *gorm.DB

// Init connects to Postgres. Schema management is left to the migration
// runner, so no auto migration happens here.
func Init() {
	var err error
	DB, err = gorm.Open(postgres.Open(config.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	log.Println("Database connected")
}

// InitWithGormDB injects an existing connection, used by tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// SQLDB exposes the underlying *sql.DB for the migration runner.
func SQLDB() (*sql.DB, error) {
	return DB.DB()
}
