package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is a node in the admin-governed category forest. Rows are created
// by the ingestion worker with NeedsReview set; admins approve, merge, rename
// or delete them. (name, parent_id) is unique among active rows, enforced by
// a partial index in db.Migrate.
type Category struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	Name     string     `gorm:"column:name;not null" json:"name"`
	ParentID *uuid.UUID `gorm:"column:parent_id;type:uuid;index" json:"parent_id,omitempty"`

	NeedsReview bool `gorm:"column:needs_review;not null;default:true;index" json:"needs_review"`
	IsActive    bool `gorm:"column:is_active;not null;default:true" json:"is_active"`

	// SupplierID records which supplier feed auto-created this node.
	SupplierID *uuid.UUID `gorm:"column:supplier_id;type:uuid" json:"supplier_id,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Category) TableName() string { return "category" }
