package department_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"employee-management/internal/department"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupRepoTest(t *testing.T) department.Repository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&department.Department{}))

	return department.NewRepository(db)
}

func seedDepartment(t *testing.T, repo department.Repository, code, name string) *department.Department {
	t.Helper()
	dept := &department.Department{
		DepartmentCode: code,
		DepartmentName: name,
		IsActive:       true,
	}
	require.NoError(t, repo.Create(context.Background(), dept))
	require.NotZero(t, dept.DepartmentID)
	return dept
}

func TestDepartmentRepository_CreateAndFindByID(t *testing.T) {
	repo := setupRepoTest(t)
	ctx := context.Background()

	created := seedDepartment(t, repo, "HR", "Human Resources")

	found, err := repo.FindByID(ctx, created.DepartmentID)
	require.NoError(t, err)
	assert.Equal(t, "HR", found.DepartmentCode)
	assert.Equal(t, "Human Resources", found.DepartmentName)
	assert.True(t, found.IsActive)
}

func TestDepartmentRepository_FindAll_OrdersByName(t *testing.T) {
	repo := setupRepoTest(t)
	ctx := context.Background()

	seedDepartment(t, repo, "IT", "Information Technology")
	seedDepartment(t, repo, "FIN", "Finance")
	seedDepartment(t, repo, "HR", "Human Resources")

	depts, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, depts, 3)
	assert.Equal(t, "Finance", depts[0].DepartmentName)
	assert.Equal(t, "Human Resources", depts[1].DepartmentName)
	assert.Equal(t, "Information Technology", depts[2].DepartmentName)
}

func TestDepartmentRepository_SoftDelete(t *testing.T) {
	repo := setupRepoTest(t)
	ctx := context.Background()

	dept := seedDepartment(t, repo, "HR", "Human Resources")
	keep := seedDepartment(t, repo, "IT", "Information Technology")

	rows, err := repo.SoftDelete(ctx, dept.DepartmentID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	// Deactivated rows are invisible to every read
	_, err = repo.FindByID(ctx, dept.DepartmentID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	depts, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, depts, 1)
	assert.Equal(t, keep.DepartmentID, depts[0].DepartmentID)

	// Repeating the delete touches nothing
	rows, err = repo.SoftDelete(ctx, dept.DepartmentID)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestDepartmentRepository_CodeExists(t *testing.T) {
	repo := setupRepoTest(t)
	ctx := context.Background()

	dept := seedDepartment(t, repo, "HR", "Human Resources")

	exists, err := repo.CodeExists(ctx, "HR", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.CodeExists(ctx, "FIN", 0)
	require.NoError(t, err)
	assert.False(t, exists)

	// A record does not collide with its own code
	exists, err = repo.CodeExists(ctx, "HR", dept.DepartmentID)
	require.NoError(t, err)
	assert.False(t, exists)

	// A deactivated record frees its code
	_, err = repo.SoftDelete(ctx, dept.DepartmentID)
	require.NoError(t, err)

	exists, err = repo.CodeExists(ctx, "HR", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDepartmentRepository_Update(t *testing.T) {
	repo := setupRepoTest(t)
	ctx := context.Background()

	dept := seedDepartment(t, repo, "HR", "Human Resources")

	rows, err := repo.Update(ctx, &department.Department{
		DepartmentID:   dept.DepartmentID,
		DepartmentCode: "HRM",
		DepartmentName: "Human Resource Management",
		Description:    "People operations",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	found, err := repo.FindByID(ctx, dept.DepartmentID)
	require.NoError(t, err)
	assert.Equal(t, "HRM", found.DepartmentCode)
	assert.Equal(t, "Human Resource Management", found.DepartmentName)
	assert.Equal(t, "People operations", found.Description)
	assert.True(t, found.IsActive)

	// Deactivated rows cannot be updated
	_, err = repo.SoftDelete(ctx, dept.DepartmentID)
	require.NoError(t, err)

	rows, err = repo.Update(ctx, &department.Department{
		DepartmentID:   dept.DepartmentID,
		DepartmentCode: "X",
		DepartmentName: "X",
	})
	require.NoError(t, err)
	assert.Zero(t, rows)
}
