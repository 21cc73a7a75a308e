package repositories

import (
	"strings"

	"gorm.io/gorm"
)

// isUniqueViolation reports whether err is a unique-index conflict.
// Postgres reports these as SQLSTATE 23505; gorm may also translate them.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if err == gorm.ErrDuplicatedKey {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") || strings.Contains(msg, "duplicate key")
}

// applyPagination normalizes page/pageSize and applies them to query.
func applyPagination(query *gorm.DB, page, pageSize int) (*gorm.DB, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return query.Offset((page - 1) * pageSize).Limit(pageSize), page, pageSize
}
