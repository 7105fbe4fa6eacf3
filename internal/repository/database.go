package repository

import (
	"fmt"
	"log"
	"strings"

	"starcatalog/internal/config"
	"starcatalog/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DefaultSQLitePath backs the catalog when no DATABASE_URL is set.
const DefaultSQLitePath = "/tmp/starcatalog.db"

func InitDB(cfg config.Config) (*gorm.DB, error) {
	url := cfg.DatabaseURL
	if url == "" {
		url = "sqlite://" + DefaultSQLitePath
	}

	var dialer gorm.Dialector
	if strings.HasPrefix(url, "postgres") {
		dialer = postgres.Open(url)
	} else if strings.HasPrefix(url, "sqlite") {
		dialer = sqlite.Open(strings.TrimPrefix(url, "sqlite://"))
	} else {
		return nil, fmt.Errorf("unsupported database driver: %s", url)
	}

	db, err := gorm.Open(dialer, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// AutoMigrate creates the catalog schema directly through gorm. Used on
// the sqlite path and in tests; postgres deployments run the versioned
// migrations instead.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Character{},
		&models.Planet{},
		&models.Vehicle{},
		&models.Favorite{},
	)
}

func RunMigrations(databaseURL string, sourcePath string) error {
	if sourcePath == "" {
		sourcePath = "file://migrations"
	}
	m, err := migrate.New(
		sourcePath,
		databaseURL,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run up migrations: %w", err)
	}

	log.Println("Database migrations ran successfully")
	return nil
}
