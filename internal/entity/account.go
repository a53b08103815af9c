package entity

import (
	"time"

	"gorm.io/gorm"
)

// Account is a registered portal user. The password hash is stored for
// completeness of the registration flow; login does not verify it.
type Account struct {
	ID           string         `gorm:"primarykey;size:36" json:"id"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string         `gorm:"size:100;not null" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Account) TableName() string {
	return "accounts"
}
