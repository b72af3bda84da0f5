package postgres

import (
	"fmt"

	"stockyard/internal/adapters/out/postgres/orderrepo"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds a lib/pq key/value connection string.
func DSN(host, port, user, password, dbName, sslMode string) string {
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
}

// Open connects through lib/pq so that driver errors surface as *pq.Error.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the order tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{}, &orderrepo.NoteDTO{})
}
