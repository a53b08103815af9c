package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// New opens the configured database. sqlite keeps everything in a local
// file, the storage analogue of the portal's per-origin persistence;
// postgres is available for shared deployments.
func New(config *viper.Viper) *gorm.DB {
	driver := config.GetString("database.driver")

	var db *gorm.DB
	var err error

	switch driver {
	case "sqlite", "":
		path := config.GetString("database.path")
		if path == "" {
			path = "nyayasathi.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	case "postgres":
		username := config.GetString("database.username")
		password := config.GetString("database.password")
		host := config.GetString("database.host")
		port := config.GetInt("database.port")
		dbname := config.GetString("database.dbname")
		sslmode := config.GetString("database.sslmode")
		if sslmode == "" {
			sslmode = "disable"
		}
		timezone := config.GetString("database.timezone")
		if timezone == "" {
			timezone = "UTC"
		}

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
			host,
			username,
			password,
			dbname,
			port,
			sslmode,
			timezone,
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		panic(fmt.Errorf("unknown database driver: %s", driver))
	}

	if err != nil {
		panic(fmt.Errorf("failed to connect database: %w", err))
	}

	return db
}
