package models

import (
	"time"
)

// Review is one rating/comment per (user, part) pair, backed by a
// unique composite index in addition to the service-level check.
type Review struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                   // primary key
	UserID    uint      `gorm:"not null;uniqueIndex:idx_reviews_user_part" json:"user_id"` // author
	PartID    uint      `gorm:"not null;uniqueIndex:idx_reviews_user_part" json:"part_id"` // reviewed part
	Rating    int       `gorm:"not null" json:"rating"`                                 // 1-5
	Comment   string    `gorm:"type:text" json:"comment"`                               // optional text
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                // created time
	UpdatedAt time.Time `json:"updated_at"`                                             // updated time

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Part *Part `gorm:"foreignKey:PartID" json:"part,omitempty"`
}

// TableName sets the table name.
func (Review) TableName() string {
	return "reviews"
}
