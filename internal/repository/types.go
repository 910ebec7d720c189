package repository

import "github.com/shopspring/decimal"

// PartListFilter narrows part listings. SortBy must already be resolved
// against the sort allowlist by the caller.
type PartListFilter struct {
	Page          int
	PageSize      int
	Search        string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	SupplierID    uint
	Compatibility string
	SortBy        string
	SortOrder     string
	WithSupplier  bool
}

// SupplierListFilter narrows supplier listings.
type SupplierListFilter struct {
	Page      int
	PageSize  int
	Search    string
	MinRating *decimal.Decimal
	MaxRating *decimal.Decimal
	SortBy    string
	SortOrder string
}

// InventoryListFilter narrows inventory listings.
type InventoryListFilter struct {
	Page       int
	PageSize   int
	PartID     uint
	SupplierID uint
	Location   string
}

// OrderListFilter narrows order listings. UserID of zero means all users.
type OrderListFilter struct {
	Page      int
	PageSize  int
	UserID    uint
	Status    string
	SortBy    string
	SortOrder string
}

// ReviewListFilter narrows review listings.
type ReviewListFilter struct {
	Page     int
	PageSize int
	PartID   uint
	UserID   uint
}

// UserListFilter narrows account listings.
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	Role     string
}
