// Package db opens the GORM database handle used by every adapter.
package db

import (
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "dreamjournal/internal/feature/auth/domain/entity"
	dreamsentity "dreamjournal/internal/feature/dreams/domain/entity"
	verificationentity "dreamjournal/internal/feature/verification/domain/entity"
)

// OpenDB opens the database selected by DB_DRIVER. "postgres" connects to
// DATABASE_URL; anything else opens the SQLite file at SQLITE_PATH
// (default ./dreamjournal.db). Postgres connection attempts retry for up to
// 60 seconds so the service survives a database that is still starting.
func OpenDB() *gorm.DB {
	if os.Getenv("DB_DRIVER") == "postgres" {
		return openPostgres()
	}
	return openSQLite()
}

func openPostgres() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	// Reject malformed DSNs before the retry loop so a typo fails fast
	// instead of retrying for a minute.
	if _, err := pgx.ParseConfig(dsn); err != nil {
		log.Fatalf("invalid DATABASE_URL: %v", err)
	}

	var (
		db  *gorm.DB
		err error
	)
	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	migrate(db)
	return db
}

func openSQLite() *gorm.DB {
	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "./dreamjournal.db"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open sqlite database: %v", err)
	}

	migrate(db)
	return db
}

func migrate(db *gorm.DB) {
	if os.Getenv("RUN_MIGRATIONS") != "true" {
		return
	}
	if err := db.AutoMigrate(
		&authentity.User{},
		&dreamsentity.DreamEntry{},
		&verificationentity.EmailVerification{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
}
