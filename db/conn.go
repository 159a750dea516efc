// Package db handles the database connection
package db

import (
	"fmt"
	"lavish/store-api/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the configured database and migrates the schema. The
// returned handle is created once at startup and injected everywhere
// it's needed, never pulled from a global.
func New() (*gorm.DB, error) {
	var dialector gorm.Dialector

	dsn := viper.GetString("database.dsn")

	switch viper.GetString("database.driver") {
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	// TranslateError makes unique constraint violations show up as
	// gorm.ErrDuplicatedKey on both drivers, which the signup path
	// relies on to catch duplicate emails that slip past the
	// existence check
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database, %w", viper.GetString("database.driver"), err)
	}

	err = db.AutoMigrate(model.User{}, model.Product{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
