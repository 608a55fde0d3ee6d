package infra

import (
	"fmt"

	"github.com/Bran258/land-roys-v4/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate to create / update all tables.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}
	return db, nil
}

// RunMigrations applies the schema. Shared with the sqlite-backed
// integration tests so both engines see identical tables.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Categoria{},
		&model.Moto{},
		&model.MotoSpec{},
		&model.Repuesto{},
		&model.Solicitud{},
		&model.Venta{},
		&model.MovimientoStock{},
		&model.Oferta{},
		&model.Slide{},
		&model.RankingItem{},
	)
}
