package models

import (
	"time"
)

// Supplier is a dismantling donor-car source or external vendor.
// Deletion is blocked at the service layer while any part or inventory
// row still references it.
type Supplier struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                  // primary key
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`                      // unique display name
	ContactInfo JSON      `gorm:"type:json" json:"contact_info"`                         // phone/email/address map
	Rating      Money     `gorm:"type:decimal(3,2);not null;default:0" json:"rating"`    // 0-5 quality score
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                               // created time
	UpdatedAt   time.Time `json:"updated_at"`                                            // updated time

	Parts       []Part      `gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL" json:"parts,omitempty"`
	Inventories []Inventory `gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName sets the table name.
func (Supplier) TableName() string {
	return "suppliers"
}
