package user_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/miguelF21/Facepay/internal/shared/dberr"
	"github.com/miguelF21/Facepay/internal/shared/dbtest"
	"github.com/miguelF21/Facepay/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUsers(t *testing.T, repo user.Repository) {
	t.Helper()
	ctx := context.Background()
	for _, u := range []user.User{
		{ID: uuid.New(), Username: ptr("carla"), Email: "carla@facepay.test", Role: user.RoleAdmin, Active: true},
		{ID: uuid.New(), Username: ptr("bruno"), Email: "bruno@facepay.test", Role: user.RoleOperator, Active: true},
		{ID: uuid.New(), Username: ptr("ana"), Email: "ana@facepay.test", Role: user.RoleEmployee, Active: false},
	} {
		u := u
		require.NoError(t, repo.Create(ctx, &u))
	}
}

func TestRepository_FindAll(t *testing.T) {
	db := dbtest.NewSQLite(t, &user.User{})
	repo := user.NewRepository(db)
	seedUsers(t, repo)
	ctx := context.Background()

	t.Run("filter by active", func(t *testing.T) {
		q, err := user.ListDefinition.Parse(url.Values{"active": {"true"}, "ordering": {"username"}})
		require.NoError(t, err)

		users, total, err := repo.FindAll(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, users, 2)
		assert.Equal(t, "bruno", *users[0].Username)
		assert.Equal(t, "carla", *users[1].Username)
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		q, err := user.ListDefinition.Parse(url.Values{"search": {"ANA@"}})
		require.NoError(t, err)

		users, total, err := repo.FindAll(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "ana@facepay.test", users[0].Email)
	})

	t.Run("descending order and pagination", func(t *testing.T) {
		q, err := user.ListDefinition.Parse(url.Values{"ordering": {"-username"}, "page": {"2"}, "page_size": {"2"}})
		require.NoError(t, err)

		users, total, err := repo.FindAll(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, users, 1)
		assert.Equal(t, "ana", *users[0].Username)
	})
}

func TestRepository_UniqueEmailAndDelete(t *testing.T) {
	db := dbtest.NewSQLite(t, &user.User{})
	repo := user.NewRepository(db)
	ctx := context.Background()

	first := user.User{ID: uuid.New(), Email: "dup@facepay.test", Role: user.RoleEmployee, Active: true}
	require.NoError(t, repo.Create(ctx, &first))

	err := repo.Create(ctx, &user.User{ID: uuid.New(), Email: "dup@facepay.test", Role: user.RoleEmployee, Active: true})
	assert.True(t, dberr.IsDuplicate(err))

	found, err := repo.FindByEmail(ctx, "dup@facepay.test")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.FindByID(ctx, first.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), gorm.ErrRecordNotFound)
}
