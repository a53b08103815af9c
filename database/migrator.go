package database

import (
	"github.com/nyayasathi/nyayasathi-be/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.StorageEntry{},
		&entity.Account{},
	)
	return err
}
