package infra

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
)

func InitPostgresql(cfg *Config) (*gorm.DB, error) {
	if cfg.PostgresURL == "" {
		return nil, fmt.Errorf("POSTGRES_URL is not set")
	}

	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := Migrate(connectionPool); err != nil {
			return nil, err
		}
	}

	return connectionPool, nil
}

// Migrate enables pgvector and brings every table up to date.
func Migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return fmt.Errorf("enable vector extension: %w", err)
	}
	if err := db.AutoMigrate(db_models.AllModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	zap.L().Info("database migrated", zap.Int("models", len(db_models.AllModels())))
	return nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		zap.L().Error("error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		zap.L().Error("error closing database connection", zap.Error(err))
	} else {
		zap.L().Info("PostgreSQL database connection closed successfully")
	}
}

func StartTransaction(db *gorm.DB) *gorm.DB {
	tx := db.Begin()
	if tx.Error != nil {
		zap.L().Error("error starting transaction", zap.Error(tx.Error))
	}
	return tx
}

// ReleaseTransaction rolls tx back when *err is set and commits it otherwise.
// A failed commit is stored in *err.
func ReleaseTransaction(tx *gorm.DB, err *error) {
	if *err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			zap.L().Error("error rolling back transaction", zap.Error(rollbackErr), zap.NamedError("cause", *err))
		}
		return
	}
	if commitErr := tx.Commit().Error; commitErr != nil {
		zap.L().Error("error committing transaction", zap.Error(commitErr))
		*err = commitErr
	}
}
