package employee_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/miguelF21/Facepay/internal/address"
	"github.com/miguelF21/Facepay/internal/contact"
	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/shared/dberr"
	"github.com/miguelF21/Facepay/internal/shared/dbtest"
	"github.com/miguelF21/Facepay/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (employee.Repository, *gorm.DB) {
	t.Helper()
	db := dbtest.NewSQLite(t, &user.User{}, &contact.Contact{}, &address.Address{}, &employee.Employee{})
	return employee.NewRepository(db), db
}

func TestEmployeeRepository_FindByIDPreloadsRelations(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	u := user.User{ID: uuid.New(), Email: "ana@facepay.test", Role: user.RoleEmployee, Active: true}
	city := "Bogota"
	a := address.Address{ID: uuid.New(), City: &city}
	require.NoError(t, db.Create(&u).Error)
	require.NoError(t, db.Create(&a).Error)

	e := &employee.Employee{ID: uuid.New(), UserID: &u.ID, AddressID: &a.ID, EmployeeCode: strPtr("TEST001")}
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.FindByID(ctx, e.ID)

	require.NoError(t, err)
	require.NotNil(t, got.User)
	assert.Equal(t, "ana@facepay.test", got.User.Email)
	require.NotNil(t, got.Address)
	assert.Equal(t, "Bogota", *got.Address.City)
	assert.Nil(t, got.Contact)
}

func TestEmployeeRepository_DeletingUserNullsReference(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	u := user.User{ID: uuid.New(), Email: "ana@facepay.test", Role: user.RoleEmployee, Active: true}
	require.NoError(t, db.Create(&u).Error)
	e := &employee.Employee{ID: uuid.New(), UserID: &u.ID}
	require.NoError(t, repo.Create(ctx, e))

	require.NoError(t, db.Delete(&user.User{}, "id = ?", u.ID).Error)

	got, err := repo.FindByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Nil(t, got.UserID)
	assert.Nil(t, got.User)
}

func TestEmployeeRepository_Constraints(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &employee.Employee{ID: uuid.New(), EmployeeCode: strPtr("TEST001")}))

	err := repo.Create(ctx, &employee.Employee{ID: uuid.New(), EmployeeCode: strPtr("TEST001")})
	assert.True(t, dberr.IsDuplicate(err))

	missing := uuid.New()
	err = repo.Create(ctx, &employee.Employee{ID: uuid.New(), ContactID: &missing})
	assert.Equal(t, dberr.KindForeignKey, dberr.Classify(err))
}

func TestEmployeeRepository_FindAllSearchAndFilter(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	doc := int64(1032456789)
	seed := []employee.Employee{
		{ID: uuid.New(), FirstName: strPtr("Ana"), Department: strPtr("Sales"), DocumentNumber: &doc},
		{ID: uuid.New(), FirstName: strPtr("Bruno"), Department: strPtr("Sales")},
		{ID: uuid.New(), FirstName: strPtr("Carla"), Department: strPtr("IT")},
	}
	for i := range seed {
		require.NoError(t, repo.Create(ctx, &seed[i]))
	}

	q, err := employee.ListDefinition.Parse(url.Values{"department": {"Sales"}, "ordering": {"-first_name"}})
	require.NoError(t, err)
	res, total, err := repo.FindAll(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, res, 2)
	assert.Equal(t, "Bruno", *res[0].FirstName)

	q, err = employee.ListDefinition.Parse(url.Values{"search": {"3245"}})
	require.NoError(t, err)
	res, total, err = repo.FindAll(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Ana", *res[0].FirstName)
}
