package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// SupplierItem is one supplier's listing as ingested from their feed.
// ProductID links it to at most one Product; the ingestion worker owns every
// other column.
type SupplierItem struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	SupplierID uuid.UUID `gorm:"column:supplier_id;type:uuid;not null;index:idx_supplier_item_sku,unique,priority:1" json:"supplier_id"`

	// SupplierSKU is the supplier's own key, unique within that supplier.
	SupplierSKU string `gorm:"column:supplier_sku;not null;index:idx_supplier_item_sku,unique,priority:2" json:"supplier_sku"`

	ProductID *uuid.UUID `gorm:"column:product_id;type:uuid;index" json:"product_id,omitempty"`

	CurrentPrice    decimal.Decimal   `gorm:"column:current_price;type:numeric(12,2);not null;default:0" json:"current_price"`
	Characteristics datatypes.JSONMap `gorm:"column:characteristics" json:"characteristics,omitempty"`

	LastIngestedAt *time.Time `gorm:"column:last_ingested_at;index" json:"last_ingested_at,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (SupplierItem) TableName() string { return "supplier_item" }
