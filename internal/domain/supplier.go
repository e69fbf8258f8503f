package domain

import (
	"time"

	"github.com/google/uuid"
)

// Supplier rows are managed by the supplier onboarding flow; this core only
// references them as the owner of supplier items.
type Supplier struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	Name string `gorm:"column:name;not null" json:"name"`
	Code string `gorm:"column:code;not null;uniqueIndex" json:"code"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Supplier) TableName() string { return "supplier" }
