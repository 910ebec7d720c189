package models

import (
	"time"
)

// Favorite is a client's saved-for-later marker, one per
// (user, part) pair.
type Favorite struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                     // primary key
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorites_user_part" json:"user_id"` // owner
	PartID    uint      `gorm:"not null;uniqueIndex:idx_favorites_user_part" json:"part_id"` // saved part
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                  // created time

	Part *Part `gorm:"foreignKey:PartID" json:"part,omitempty"`
}

// TableName sets the table name.
func (Favorite) TableName() string {
	return "favorites"
}
