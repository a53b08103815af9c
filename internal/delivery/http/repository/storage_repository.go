package repository

import (
	"errors"

	"github.com/nyayasathi/nyayasathi-be/internal/entity"
	"gorm.io/gorm"
)

type (
	// StorageRepository is the durable key-value store behind the
	// session, preference and quiz-seen records. Last writer wins, no
	// transactions.
	StorageRepository interface {
		Get(db *gorm.DB, key string) (string, bool, error)
		Put(db *gorm.DB, key, value string) error
		Delete(db *gorm.DB, key string) error
	}

	storageRepository struct {
		db *gorm.DB
	}
)

func NewStorageRepository(db *gorm.DB) StorageRepository {
	return &storageRepository{db: db}
}

func (r *storageRepository) Get(db *gorm.DB, key string) (string, bool, error) {
	if db == nil {
		db = r.db
	}
	var entry entity.StorageEntry
	err := db.Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (r *storageRepository) Put(db *gorm.DB, key, value string) error {
	if db == nil {
		db = r.db
	}
	entry := entity.StorageEntry{Key: key, Value: value}
	// Upsert: update if exists, create if not
	return db.Where("key = ?", key).Assign(entity.StorageEntry{Key: key, Value: value}).FirstOrCreate(&entry).Error
}

func (r *storageRepository) Delete(db *gorm.DB, key string) error {
	if db == nil {
		db = r.db
	}
	return db.Where("key = ?", key).Delete(&entity.StorageEntry{}).Error
}
