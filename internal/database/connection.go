// connection.go
//
// Database connection management for the novelx reading platform API.
// Two pools run against the same database with different credentials: the
// catalog pool reads content tables only, the ledger pool owns the mutable
// per-user state (profiles, unlocks, reading history).

package database

import (
	"fmt"
	"log"

	"github.com/novelpj/novelx/internal/config"
	"github.com/novelpj/novelx/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes the catalog database connection based on the configured DB_TYPE
func Connect(cfg *config.Config) (*gorm.DB, error) {
	return open(cfg, cfg.DBCatalogUser, cfg.DBCatalogPassword, cfg.DBCatalogConnectionLimit, "catalog")
}

// ConnectLedger establishes the ledger database connection (with write credentials)
func ConnectLedger(cfg *config.Config) (*gorm.DB, error) {
	return open(cfg, cfg.DBLedgerUser, cfg.DBLedgerPassword, cfg.DBLedgerConnectionLimit, "ledger")
}

func open(cfg *config.Config, user, password string, connLimit int, pool string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DBType {
	case "mysql", "mariadb":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user,
			password,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBDatabase,
		)
		dialector = mysql.Open(dsn)

	case "postgres", "postgresql":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost,
			user,
			password,
			cfg.DBDatabase,
			cfg.DBPort,
		)
		dialector = postgres.Open(dsn)

	case "sqlite":
		// For SQLite, DBDatabase is the file path and there is a single set of credentials
		dialector = sqlite.Open(cfg.DBDatabase)

	case "sqlserver", "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			user,
			password,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBDatabase,
		)
		dialector = sqlserver.Open(dsn)

	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Duplicate-key errors become gorm.ErrDuplicatedKey; the purchase
		// transaction relies on this to arbitrate concurrent unlocks.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", pool, err)
	}

	// Get underlying SQL DB for connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxOpenConns(connLimit)
	sqlDB.SetMaxIdleConns(connLimit / 2)

	log.Printf("Connected to %s database (%s pool): %s", cfg.DBType, pool, cfg.DBDatabase)

	return db, nil
}

// AutoMigrate runs automatic migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Novel{},
		&models.Chapter{},
		&models.Profile{},
		&models.Unlock{},
		&models.ReadingHistory{},
	)
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
