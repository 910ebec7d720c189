package models

import (
	"github.com/avtorazbor/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// InitDefaultOperator creates the bootstrap operator account when no
// operator exists yet.
func InitDefaultOperator(username, email, password string) error {
	var count int64
	DB.Model(&User{}).Where("role = ?", "operator").Count(&count)
	if count > 0 {
		return nil
	}

	if username == "" {
		username = "operator"
	}
	if email == "" {
		email = "operator@localhost"
	}
	if password == "" {
		password = "operator123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	operator := User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         "operator",
	}

	if err := DB.Create(&operator).Error; err != nil {
		return err
	}

	if password == "operator123" {
		logger.Warnw("default_operator_created_with_default_password", "username", username)
		logger.Warnw("default_operator_password_change_required", "username", username)
	} else {
		logger.Warnw("default_operator_created", "username", username, "password_hidden", true)
	}

	return nil
}
