package sysconfig_test

import (
	"context"
	"testing"

	"github.com/miguelF21/Facepay/internal/shared/dbtest"
	"github.com/miguelF21/Facepay/internal/shared/types"
	"github.com/miguelF21/Facepay/internal/sysconfig"
	sysconfigerrors "github.com/miguelF21/Facepay/internal/sysconfig/errors"
	mock_sysconfig "github.com/miguelF21/Facepay/internal/sysconfig/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (sysconfig.Service, sqlmock.Sqlmock, *mock_sysconfig.MockRepository) {
	t.Helper()
	db, _, sqlMock := dbtest.NewMock(t)
	repo := mock_sysconfig.NewMockRepository(gomock.NewController(t))

	t.Cleanup(func() {
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
	return sysconfig.NewService(db, repo), sqlMock, repo
}

func TestSystemConfigService_CreateDefaultsToEmptyObject(t *testing.T) {
	svc, sqlMock, repo := setupService(t)
	dbtest.ExpectTx(sqlMock, true)

	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg *sysconfig.SystemConfig) error {
			assert.Equal(t, "{}", string(cfg.Settings))
			return nil
		})

	res, err := svc.Create(context.Background(), sysconfig.SystemConfigRequest{})

	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(res.Settings))
}

func TestSystemConfigService_Update(t *testing.T) {
	id := uuid.New()
	existing := func() *sysconfig.SystemConfig {
		return &sysconfig.SystemConfig{ID: id, Settings: types.JSON(`{"late_after":"08:10"}`)}
	}

	t.Run("replaces settings", func(t *testing.T) {
		svc, sqlMock, repo := setupService(t)
		dbtest.ExpectTx(sqlMock, true)

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().FindByID(gomock.Any(), id).Return(existing(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Update(context.Background(), id.String(), sysconfig.SystemConfigRequest{
			Settings: types.Some(types.JSON(`{"late_after":"08:30"}`)),
		})

		require.NoError(t, err)
		assert.JSONEq(t, `{"late_after":"08:30"}`, string(res.Settings))
	})

	t.Run("null resets to empty object", func(t *testing.T) {
		svc, sqlMock, repo := setupService(t)
		dbtest.ExpectTx(sqlMock, true)

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().FindByID(gomock.Any(), id).Return(existing(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Update(context.Background(), id.String(), sysconfig.SystemConfigRequest{
			Settings: types.Null[types.JSON](),
		})

		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(res.Settings))
	})

	t.Run("absent settings are kept", func(t *testing.T) {
		svc, sqlMock, repo := setupService(t)
		dbtest.ExpectTx(sqlMock, true)

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().FindByID(gomock.Any(), id).Return(existing(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Update(context.Background(), id.String(), sysconfig.SystemConfigRequest{})

		require.NoError(t, err)
		assert.JSONEq(t, `{"late_after":"08:10"}`, string(res.Settings))
	})

	t.Run("not found", func(t *testing.T) {
		svc, sqlMock, repo := setupService(t)
		dbtest.ExpectTx(sqlMock, false)

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(context.Background(), id.String(), sysconfig.SystemConfigRequest{})

		assert.ErrorIs(t, err, sysconfigerrors.ErrSystemConfigNotFound)
	})
}

func TestSystemConfigService_InvalidID(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.GetByID(context.Background(), "42")

	assert.ErrorIs(t, err, sysconfigerrors.ErrInvalidSystemConfigID)
}
