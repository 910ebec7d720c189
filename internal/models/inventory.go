package models

import (
	"time"
)

// Inventory records the physical placement of a part in the yard or
// warehouse. Independent of Part.Stock, which is the sellable quantity.
type Inventory struct {
	ID         uint      `gorm:"primarykey" json:"id"`                 // primary key
	PartID     uint      `gorm:"index;not null" json:"part_id"`        // located part
	SupplierID *uint     `gorm:"index" json:"supplier_id,omitempty"`   // sourcing supplier
	Quantity   int       `gorm:"not null;default:0" json:"quantity"`   // physical count at the location
	Location   string    `gorm:"type:varchar(255)" json:"location"`    // shelf / row / yard slot
	CreatedAt  time.Time `gorm:"index" json:"created_at"`              // created time
	UpdatedAt  time.Time `json:"updated_at"`                           // updated time

	Part     *Part     `gorm:"foreignKey:PartID" json:"part,omitempty"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// TableName sets the table name.
func (Inventory) TableName() string {
	return "inventories"
}
