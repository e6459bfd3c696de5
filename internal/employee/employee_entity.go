package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const TableName = "employees"

const (
	RoleHRD     = "HRD"
	RoleManager = "MANAGER"
	RoleStaff   = "STAFF"
)

type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;index"`
	FullName  string
	Email     string `gorm:"uniqueIndex"`
	Role      string `gorm:"type:varchar(20);not null;default:'STAFF'"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
