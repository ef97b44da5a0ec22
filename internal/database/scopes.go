package database

import (
	"gorm.io/gorm"

	"github.com/hiyoko-dev/crm-web/internal/utils"
)

// Paginate applies a clamped page to a GORM query
func Paginate(page utils.Page) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(page.Offset()).Limit(page.Size)
	}
}
