package entity

import (
	"time"
)

// StorageEntry is one row of the client-scoped key-value store. Keys are
// namespaced "<client_id>/<record key>" and values are either JSON
// documents or raw string codes depending on the record.
type StorageEntry struct {
	Key       string    `gorm:"primarykey;size:191" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StorageEntry) TableName() string {
	return "storage_entries"
}
