package database

import (
	"fmt"
	"log"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/config"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/entity"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/enum"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured persistence backend. The shop runs against
// Postgres when a server is available and falls back to an embedded SQLite
// file for standalone installs; everything above the repository layer is
// oblivious to the choice.
func Connect(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}

	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}), gormCfg)
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(cfg.Path), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q (use postgres or sqlite)", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.Driver == "postgres" {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	} else {
		// SQLite serializes writers; a single connection avoids lock errors.
		sqlDB.SetMaxOpenConns(1)
	}

	log.Printf("Successfully connected to %s database", cfg.Driver)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Customer{},
		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.Payment{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultUsers creates the default operator accounts when the users
// table is empty: an owner and a shopkeeper, mirroring a fresh shop install.
func SeedDefaultUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding default users...")

	defaults := []struct {
		username string
		name     string
		password string
		role     enum.UserRole
	}{
		{username: "owner", name: "Store Owner", password: "owner123", role: enum.UserRoleOwner},
		{username: "shop", name: "Shopkeeper", password: "shop123", role: enum.UserRoleShopkeeper},
	}

	for _, d := range defaults {
		hashed, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", d.username, err)
		}
		user := entity.User{
			Username: d.username,
			Name:     d.name,
			Password: string(hashed),
			Role:     d.role,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Warning: failed to seed user %s: %v", d.username, err)
		}
	}

	log.Println("Default users seeded (change the passwords in production)")
	return nil
}
