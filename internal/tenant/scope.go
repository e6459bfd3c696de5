package tenant

import "gorm.io/gorm"

// Scope restricts a query on table to one company. The column is qualified
// so the scope stays unambiguous when the query joins other tenant tables.
func Scope(table, companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".company_id = ?", companyID)
	}
}
