package employee

import (
	"context"

	"go-cuti/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	FindAllByCompany(ctx context.Context, companyID string) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindAllByCompany returns the directory in the order employees joined, which
// is also the order of the employee filter.
func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(TableName, companyID)).
		Order("created_at ASC").
		Find(&employees).Error
	return employees, err
}
