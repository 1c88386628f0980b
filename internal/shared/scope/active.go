package scope

import "gorm.io/gorm"

// Active restricts a query to rows that have not been soft deleted. Every
// repository read goes through this scope; it is the single place the
// is_active predicate lives.
func Active() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true)
	}
}
