package models

import (
	"time"
)

// Part is a sellable dismantled component. Stock is the sellable
// quantity and is mutated only by the order engine and operator edits.
type Part struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                    // primary key
	Name          string    `gorm:"not null;index" json:"name"`                              // part name
	Description   string    `gorm:"type:text" json:"description"`                            // free-form description
	Price         Money     `gorm:"type:decimal(10,2);not null;default:0" json:"price"`      // unit price
	Compatibility JSON      `gorm:"type:json" json:"compatibility"`                          // make/model/year map
	Stock         int       `gorm:"not null;default:0" json:"stock"`                         // sellable quantity, never negative
	ImagePath     string    `gorm:"type:varchar(500)" json:"image_path"`                     // uploaded photo path
	SupplierID    *uint     `gorm:"index" json:"supplier_id,omitempty"`                      // owning supplier, weak reference
	CreatedAt     time.Time `gorm:"index" json:"created_at"`                                 // created time
	UpdatedAt     time.Time `json:"updated_at"`                                              // updated time

	Supplier    *Supplier   `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Inventories []Inventory `gorm:"foreignKey:PartID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews     []Review    `gorm:"foreignKey:PartID;constraint:OnDelete:CASCADE" json:"-"`
	Favorites   []Favorite  `gorm:"foreignKey:PartID;constraint:OnDelete:CASCADE" json:"-"`

	// Aggregates filled on detail reads, not persisted.
	AvgRating   float64 `gorm:"-" json:"avg_rating,omitempty"`
	ReviewCount int64   `gorm:"-" json:"review_count,omitempty"`
}

// TableName sets the table name.
func (Part) TableName() string {
	return "parts"
}
