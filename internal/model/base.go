package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel audit fields embedded by every table.
// created_by/updated_by are weak references to users.user_id.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	CreatedBy *string   `gorm:"type:uuid"                          json:"created_by,omitempty"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
	UpdatedBy *string   `gorm:"type:uuid"                          json:"updated_by,omitempty"`
}

// StampCreated records actor as author and last editor.
func (b *BaseModel) StampCreated(actor string) {
	b.CreatedBy = &actor
	b.UpdatedBy = &actor
}

// StampUpdated records actor as last editor.
func (b *BaseModel) StampUpdated(actor string) {
	b.UpdatedBy = &actor
}

// SoftDeleteModel audit fields plus soft delete.
type SoftDeleteModel struct {
	BaseModel
	DeletedAt gorm.DeletedAt `gorm:"index"     json:"deleted_at,omitempty"`
	DeletedBy *string        `gorm:"type:uuid" json:"deleted_by,omitempty"`
}

// MediaRef points at an image on the media host. URL and StorageID are
// always set together.
type MediaRef struct {
	URL       string `gorm:"column:url;type:varchar(500)"`
	StorageID string `gorm:"column:storage_id;type:varchar(255)"`
}

// Empty reports whether no image is attached.
func (m MediaRef) Empty() bool { return m.StorageID == "" }

// DocumentRef points at a PDF on the media host.
type DocumentRef struct {
	URL       string `gorm:"column:url;type:varchar(500)"`
	StorageID string `gorm:"column:storage_id;type:varchar(255)"`
	ByteSize  int64  `gorm:"column:byte_size"`
	PageCount *int   `gorm:"column:page_count"`
}

// Empty reports whether no document is attached.
func (d DocumentRef) Empty() bool { return d.StorageID == "" }

// UpdaterName is the display name of the last editor.
func UpdaterName(u *User) string {
	if u == nil || u.Name == "" {
		return "Desconocido"
	}
	return u.Name
}
