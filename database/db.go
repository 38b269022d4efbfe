package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"market-pulse/models"
)

// DefaultDSN keeps everything in memory; the data is gone on restart.
const DefaultDSN = "file:market-pulse?mode=memory&cache=shared"

var DB *gorm.DB

// Open connects, migrates and seeds the broker table.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A shared in-memory database lives only while a connection is open.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := db.AutoMigrate(&models.Broker{}, &models.PollVote{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	if err := SeedBrokers(db); err != nil {
		return nil, err
	}
	return db, nil
}

// InitDB opens the process-wide handle used by main.
func InitDB(dsn string, log *zap.Logger) error {
	db, err := Open(dsn)
	if err != nil {
		return err
	}
	DB = db
	var brokers int64
	DB.Model(&models.Broker{}).Count(&brokers)
	log.Info("database ready", zap.String("dsn", dsn), zap.Int64("brokers", brokers))
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
