package sqlite3

import (
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	embedded "github.com/stonehenge-collective/ladderserver"
)

func UpServerDB(db *sql.DB) error {
	return up(db, "migrations", "ladder")
}

func UpAuthDB(db *sql.DB) error {
	return up(db, "auth/migrations", "auth")
}

func UpBotDB(db *sql.DB) error {
	return up(db, "bot/migrations", "bot")
}

func up(db *sql.DB, dir string, name string) error {
	var source = embedded.ServerMigrations
	switch dir {
	case "auth/migrations":
		source = embedded.AuthMigrations
	case "bot/migrations":
		source = embedded.BotMigrations
	}
	sourceDriver, err := iofs.New(source, dir)
	if err != nil {
		return err
	}
	databaseDriver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", sourceDriver, name, databaseDriver)
	if err != nil {
		return err
	}
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
