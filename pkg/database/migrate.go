package database

import (
	"database/sql"
	"log"

	"catden/pkg/database/migrations"

	"github.com/pressly/goose/v3"
)

// Migrate brings the schema up to date from the embedded migration files.
// Safe to run on every start; goose skips applied versions.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.Up(db, "."); err != nil {
		return err
	}

	log.Println("[DB] Schema up to date")
	return nil
}
