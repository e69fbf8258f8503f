package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProductStatusDraft    = "draft"
	ProductStatusActive   = "active"
	ProductStatusArchived = "archived"
)

// ProductNameMaxLen bounds the admin-supplied product name.
const ProductNameMaxLen = 500

// Product is the marketplace-facing catalog entity. InternalSKU is the
// globally unique business key and is immutable once set.
type Product struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	InternalSKU string `gorm:"column:internal_sku;not null;uniqueIndex" json:"internal_sku"`
	Name        string `gorm:"column:name;not null" json:"name"`

	CategoryID *uuid.UUID `gorm:"column:category_id;type:uuid;index" json:"category_id,omitempty"`

	Status string `gorm:"column:status;not null;default:'draft';index" json:"status"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Product) TableName() string { return "product" }

func ValidProductStatus(s string) bool {
	switch s {
	case ProductStatusDraft, ProductStatusActive, ProductStatusArchived:
		return true
	default:
		return false
	}
}
