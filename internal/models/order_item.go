package models

import (
	"time"
)

// OrderItem is one order line. Price is the snapshot of the part
// price at order time and must not follow later catalog edits.
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                // primary key
	OrderID   uint      `gorm:"index;not null" json:"order_id"`                      // owning order
	PartID    uint      `gorm:"index;not null" json:"part_id"`                       // ordered part
	Quantity  int       `gorm:"not null" json:"quantity"`                            // ordered quantity, >= 1
	Price     Money     `gorm:"type:decimal(10,2);not null;default:0" json:"price"`  // unit price snapshot
	CreatedAt time.Time `gorm:"index" json:"created_at"`                             // created time
	UpdatedAt time.Time `json:"updated_at"`                                          // updated time

	Part *Part `gorm:"foreignKey:PartID" json:"part,omitempty"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
