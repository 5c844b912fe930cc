package infrastructure

import (
	"fmt"

	"github.com/harunoztuurk/otoservis/config"
	"github.com/harunoztuurk/otoservis/internal/domain/customer"
	"github.com/harunoztuurk/otoservis/internal/domain/invoice"
	"github.com/harunoztuurk/otoservis/internal/domain/lifecycle"
	"github.com/harunoztuurk/otoservis/internal/domain/service"
	"github.com/harunoztuurk/otoservis/internal/domain/staff"
	"github.com/harunoztuurk/otoservis/internal/domain/vehicle"
	"github.com/harunoztuurk/otoservis/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("Veritabanına bağlanılamadı")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Veritabanı bağlantısı alınamadı")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("Veritabanı bağlantısı kuruldu")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("Migration'lar çalıştırılıyor...")

	entities := []interface{}{
		&staff.Staff{},
		&customer.Customer{},
		&vehicle.Vehicle{},
		&service.Record{},
		&service.Item{},
		&invoice.Invoice{},
		&invoice.Item{},
		&invoice.Installment{},
		&invoice.Payment{},
		&invoiceSequenceDB{},
		&lifecycle.Event{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().
				Err(err).
				Str("entity", fmt.Sprintf("%T", entity)).
				Msg("Entity migrate edilemedi")
			return err
		}
	}

	logger.Info().Msg("Migration'lar tamamlandı")
	return nil
}
