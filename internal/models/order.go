package models

import (
	"time"
)

// Order is a client purchase request. TotalPrice is computed at
// creation from line snapshots and never changes afterwards.
type Order struct {
	ID             uint       `gorm:"primarykey" json:"id"`                                     // primary key
	UserID         uint       `gorm:"index;not null" json:"user_id"`                            // owning client
	Status         string     `gorm:"type:varchar(20);index;not null;default:'pending'" json:"status"` // pending / completed / cancelled
	TotalPrice     Money      `gorm:"type:decimal(10,2);not null;default:0" json:"total_price"` // sum of line snapshots
	DeliveryMethod string     `gorm:"type:varchar(20);not null" json:"delivery_method"`         // pickup / courier / post
	Address        string     `gorm:"type:varchar(500)" json:"address,omitempty"`               // required for courier only
	CancelledAt    *time.Time `gorm:"index" json:"cancelled_at,omitempty"`                      // cancellation time
	CreatedAt      time.Time  `gorm:"index" json:"created_at"`                                  // created time
	UpdatedAt      time.Time  `json:"updated_at"`                                               // updated time

	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
