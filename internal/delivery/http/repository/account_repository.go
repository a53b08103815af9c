package repository

import (
	"errors"

	"github.com/nyayasathi/nyayasathi-be/internal/entity"
	"gorm.io/gorm"
)

type (
	AccountRepository interface {
		Create(db *gorm.DB, account *entity.Account) error
		FindByEmail(db *gorm.DB, email string) (*entity.Account, error)
		FindByID(db *gorm.DB, id string) (*entity.Account, error)
	}

	accountRepository struct {
		db *gorm.DB
	}
)

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(db *gorm.DB, account *entity.Account) error {
	if db == nil {
		db = r.db
	}
	return db.Create(account).Error
}

func (r *accountRepository) FindByEmail(db *gorm.DB, email string) (*entity.Account, error) {
	if db == nil {
		db = r.db
	}
	var account entity.Account
	err := db.Where("email = ?", email).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByID(db *gorm.DB, id string) (*entity.Account, error) {
	if db == nil {
		db = r.db
	}
	var account entity.Account
	err := db.Where("id = ?", id).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
