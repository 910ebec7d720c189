package service

import (
	"errors"

	"gorm.io/gorm"
)

// translateDuplicate maps a unique-constraint violation onto the domain
// sentinel so the index backstop behind a check-then-create reports the
// same conflict as the check itself.
func translateDuplicate(err, sentinel error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return sentinel
	}
	return err
}

// Account errors
var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password does not meet the policy")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotAllowed     = errors.New("role not allowed")
)

// Catalog errors
var (
	ErrPartNotFound       = errors.New("part not found")
	ErrSupplierNotFound   = errors.New("supplier not found")
	ErrSupplierNameTaken  = errors.New("supplier name is already taken")
	ErrSupplierReferenced = errors.New("supplier is referenced by parts or inventories")
	ErrInventoryNotFound  = errors.New("inventory record not found")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrInvalidQuantity    = errors.New("quantity must not be negative")
	ErrInvalidPrice       = errors.New("price must not be negative")
)

// Order errors
var (
	ErrEmptyOrderItems        = errors.New("order must contain at least one item")
	ErrInvalidOrderItem       = errors.New("order item is invalid")
	ErrInvalidDeliveryMethod  = errors.New("delivery method is missing or unknown")
	ErrAddressRequired        = errors.New("address is required for courier delivery")
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrOrderNotFound          = errors.New("order not found")
	ErrOrderAccessDenied      = errors.New("order belongs to another user")
	ErrOrderNotPending        = errors.New("order is not pending")
	ErrUnknownOrderStatus     = errors.New("unknown order status")
)

// Review and favorite errors
var (
	ErrReviewNotFound     = errors.New("review not found")
	ErrReviewExists       = errors.New("part already reviewed by this user")
	ErrReviewAccessDenied = errors.New("review belongs to another user")
	ErrFavoriteExists     = errors.New("part already in favorites")
	ErrFavoriteNotFound   = errors.New("favorite not found")
)

// Upload errors
var (
	ErrUploadTooLarge     = errors.New("file size exceeds the limit")
	ErrUploadBadExtension = errors.New("file extension not allowed")
	ErrUploadBadType      = errors.New("file type not allowed")
	ErrUploadBadImage     = errors.New("image could not be decoded")
	ErrUploadTooBig       = errors.New("image dimensions exceed the limit")
)
