package repository

import (
	"strings"

	"gorm.io/gorm"
)

// applyPagination applies page/offset bounds, normalizing invalid pages.
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	return query.Limit(pageSize).Offset(offset)
}

// applySort orders by an already-allowlisted column, falling back to the
// given default clause when no column was resolved. Only "DESC" flips the
// direction; anything else sorts ascending.
func applySort(query *gorm.DB, column, direction, fallback string) *gorm.DB {
	if query == nil {
		return query
	}
	if column == "" {
		return query.Order(fallback)
	}
	if strings.EqualFold(direction, "DESC") {
		return query.Order(column + " DESC")
	}
	return query.Order(column + " ASC")
}
