package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/navid88/opencircle/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB holds the database connection
type DB struct {
	Postgres *gorm.DB
}

// InitDB initializes and returns the database connection.
// TranslateError is on so unique-constraint violations surface as
// gorm.ErrDuplicatedKey, which the engine maps to its Conflict taxonomy.
func InitDB() (*DB, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	cfg := Load()
	if cfg.PostgresURL == "" {
		return nil, fmt.Errorf("POSTGRES_CONN_STR environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	return &DB{Postgres: db}, nil
}

// Migrate creates or updates the engine's tables, including the unique
// indexes the concurrency model relies on.
func (db *DB) Migrate() error {
	return db.Postgres.AutoMigrate(
		&models.Account{},
		&models.FriendRequest{},
		&models.Comment{},
		&models.Group{},
		&models.GroupMember{},
		&models.GroupJoinRequest{},
		&models.GroupMessage{},
		&models.AdminNotification{},
		&models.Post{},
		&models.Album{},
		&models.Photo{},
	)
}

// CloseDB closes the database connection
func (db *DB) CloseDB() {
	if db.Postgres == nil {
		return
	}
	sqlDB, err := db.Postgres.DB()
	if err != nil {
		log.Printf("Error getting SQL DB from GORM: %v\n", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing PostgreSQL connection: %v\n", err)
	}
}
