package employee_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-cuti/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (employee.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	return employee.NewRepository(gdb), mock
}

func TestEmployeeRepository_FindAllByCompany(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo, mock := setupRepo(t)
		first, second := uuid.New(), uuid.New()
		now := time.Now().UTC()

		rows := sqlmock.NewRows([]string{"id", "company_id", "full_name", "email", "role", "created_at", "updated_at"}).
			AddRow(first.String(), companyID.String(), "Siti Rahma", "siti@example.com", employee.RoleHRD, now, now).
			AddRow(second.String(), companyID.String(), "Budi Santoso", "budi@example.com", employee.RoleStaff, now, now)

		mock.ExpectQuery(`SELECT \* FROM "employees" WHERE employees.company_id = \$1 AND "employees"."deleted_at" IS NULL ORDER BY created_at ASC`).
			WithArgs(companyID.String()).
			WillReturnRows(rows)

		got, err := repo.FindAllByCompany(ctx, companyID.String())

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, first, got[0].ID)
		assert.Equal(t, "Siti Rahma", got[0].FullName)
		assert.Equal(t, employee.RoleHRD, got[0].Role)
		assert.Equal(t, employee.RoleStaff, got[1].Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectQuery(`SELECT \* FROM "employees"`).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.FindAllByCompany(ctx, companyID.String())

		assert.EqualError(t, err, "connection reset")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
