package authtoken_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/miguelF21/Facepay/internal/authtoken"
	authtokenerrors "github.com/miguelF21/Facepay/internal/authtoken/errors"
	"github.com/miguelF21/Facepay/internal/shared/apperror"
	"github.com/miguelF21/Facepay/internal/shared/dbtest"
	"github.com/miguelF21/Facepay/internal/shared/types"
	"github.com/miguelF21/Facepay/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (authtoken.Service, *gorm.DB) {
	t.Helper()
	db := dbtest.NewSQLite(t, &user.User{}, &authtoken.AuthToken{})
	return authtoken.NewService(db, authtoken.NewRepository(db), zap.NewNop()), db
}

func seedUser(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()
	u := user.User{ID: uuid.New(), Email: email, Role: user.RoleEmployee, Active: true}
	require.NoError(t, db.Create(&u).Error)
	return u.ID
}

func TestAuthTokenService_Lifecycle(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	userID := seedUser(t, db, "ana@facepay.test")
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	created, err := svc.Create(ctx, authtoken.AuthTokenRequest{
		Token:     "tok-abcdef123456",
		UserID:    userID,
		ExpiresAt: types.Some(expires),
	})
	require.NoError(t, err)
	require.NotNil(t, created.User)
	assert.Equal(t, "ana@facepay.test", created.User.Email)
	assert.True(t, expires.Equal(*created.ExpiresAt))

	_, err = svc.Create(ctx, authtoken.AuthTokenRequest{Token: "tok-abcdef123456", UserID: userID})
	assert.ErrorIs(t, err, authtokenerrors.ErrTokenAlreadyExists)

	_, err = svc.Create(ctx, authtoken.AuthTokenRequest{Token: "tok-orphan", UserID: uuid.New()})
	assert.ErrorIs(t, err, apperror.ErrInvalidReference)

	updated, err := svc.Patch(ctx, "tok-abcdef123456", authtoken.AuthTokenPatchRequest{
		ExpiresAt: types.Null[time.Time](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.ExpiresAt)
	assert.Equal(t, userID.String(), updated.UserID)

	require.NoError(t, svc.Delete(ctx, "tok-abcdef123456"))
	_, err = svc.GetByID(ctx, "tok-abcdef123456")
	assert.ErrorIs(t, err, authtokenerrors.ErrAuthTokenNotFound)
}

func TestAuthTokenService_CascadeFromUser(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	userID := seedUser(t, db, "ana@facepay.test")
	otherID := seedUser(t, db, "bruno@facepay.test")

	for _, req := range []authtoken.AuthTokenRequest{
		{Token: "tok-ana-1", UserID: userID},
		{Token: "tok-ana-2", UserID: userID},
		{Token: "tok-bruno", UserID: otherID},
	} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	q, err := authtoken.ListDefinition.Parse(url.Values{"user_id": {userID.String()}})
	require.NoError(t, err)
	_, total, err := svc.GetAll(ctx, q)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	require.NoError(t, db.Delete(&user.User{}, "id = ?", userID).Error)

	rows, total, err := svc.GetAll(ctx, q)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, rows)

	_, err = svc.GetByID(ctx, "tok-bruno")
	assert.NoError(t, err)
}
