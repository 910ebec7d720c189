package models

import (
	"time"
)

// User holds both clients and operators, distinguished by Role.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`                            // primary key
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`            // unique login name
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`               // unique email
	PasswordHash string    `gorm:"not null" json:"-"`                               // bcrypt hash, never serialized
	Role         string    `gorm:"type:varchar(20);not null;default:'client';index" json:"role"` // client / operator, fixed at registration
	LastLoginAt  *time.Time `json:"last_login_at"`                                  // last successful login
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                         // created time
	UpdatedAt    time.Time `json:"updated_at"`                                      // updated time

	Orders    []Order    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews   []Review   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Favorites []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}

// IsOperator reports whether the account holds the operator role.
func (u *User) IsOperator() bool {
	return u.Role == "operator"
}
