package leave

import (
	"context"

	"go-cuti/internal/tenant"

	"gorm.io/gorm"
)

// historyColumns are the columns read when building leave history.
var historyColumns = []string{
	"id", "company_id", "employee_id", "leave_type", "start_date", "end_date",
	"total_days", "reason", "status", "rejection_reason", "created_at",
}

type Repository interface {
	FindAllByCompany(ctx context.Context, companyID string) ([]Leave, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindAllByCompany returns every non-deleted leave of the company, newest
// start date first. Ties are broken by creation time.
func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Select(historyColumns).
		Scopes(tenant.Scope(TableName, companyID)).
		Order("start_date DESC").
		Order("created_at ASC").
		Find(&leaves).Error
	return leaves, err
}
