package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/miguelF21/Facepay/internal/employee"
	employeeerrors "github.com/miguelF21/Facepay/internal/employee/errors"
	mock_employee "github.com/miguelF21/Facepay/internal/employee/mock"
	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	kafkamock "github.com/miguelF21/Facepay/internal/messaging/kafka/mock"
	"github.com/miguelF21/Facepay/internal/shared/apperror"
	"github.com/miguelF21/Facepay/internal/shared/dbtest"
	"github.com/miguelF21/Facepay/internal/shared/types"
	"github.com/miguelF21/Facepay/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	repo    *mock_employee.MockRepository
	outbox  *kafkamock.MockOutboxRepository
	svc     employee.Service
}

func setupService(t *testing.T) serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	db, _, sqlMock := dbtest.NewMock(t)

	repo := mock_employee.NewMockRepository(ctrl)
	outbox := kafkamock.NewMockOutboxRepository(ctrl)

	t.Cleanup(func() {
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	return serviceDeps{
		sqlMock: sqlMock,
		repo:    repo,
		outbox:  outbox,
		svc:     employee.NewServiceWithOutbox(db, repo, outbox),
	}
}

func strPtr(s string) *string {
	return &s
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	req := employee.EmployeeRequest{
		UserID:       types.Some(userID),
		FirstName:    types.Some("Ana"),
		LastName:     types.Some("Lopez"),
		EmployeeCode: types.Some("TEST001"),
	}

	t.Run("success returns expanded relations", func(t *testing.T) {
		deps := setupService(t)
		dbtest.ExpectTx(deps.sqlMock, true)

		var createdID uuid.UUID
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				createdID = e.ID
				require.NotNil(t, e.UserID)
				assert.Equal(t, userID, *e.UserID)
				assert.Equal(t, "TEST001", *e.EmployeeCode)
				assert.Nil(t, e.ContactID)
				return nil
			})
		deps.repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*employee.Employee, error) {
				assert.Equal(t, createdID, id)
				return &employee.Employee{
					ID:           id,
					UserID:       &userID,
					EmployeeCode: strPtr("TEST001"),
					User:         &user.User{ID: userID, Email: "ana@facepay.test", Role: user.RoleEmployee},
				}, nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				var evt events.ResourceChangedEvent
				require.NoError(t, json.Unmarshal(e.Payload, &evt))
				assert.Equal(t, "employee_created", evt.EventType)
				assert.Equal(t, createdID.String(), evt.ResourceID)
				assert.Contains(t, string(evt.Data), `"employee_code":"TEST001"`)
				return nil
			})

		res, err := deps.svc.Create(ctx, req)

		require.NoError(t, err)
		require.NotNil(t, res.User)
		assert.Equal(t, "ana@facepay.test", res.User.Email)
		assert.Equal(t, userID.String(), *res.UserID)
	})

	t.Run("duplicate employee code", func(t *testing.T) {
		deps := setupService(t)
		dbtest.ExpectTx(deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)

		_, err := deps.svc.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeCodeAlreadyExists)
	})

	t.Run("unknown user reference", func(t *testing.T) {
		deps := setupService(t)
		dbtest.ExpectTx(deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(gorm.ErrForeignKeyViolated)

		_, err := deps.svc.Create(ctx, req)

		assert.ErrorIs(t, err, apperror.ErrInvalidReference)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	contactID := uuid.New()

	t.Run("clears contact and keeps untouched fields", func(t *testing.T) {
		deps := setupService(t)
		dbtest.ExpectTx(deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id).
			Return(&employee.Employee{ID: id, FirstName: strPtr("Ana"), ContactID: &contactID}, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Nil(t, e.ContactID)
				assert.Equal(t, "Ana", *e.FirstName)
				assert.Equal(t, "Sales", *e.Department)
				return nil
			})
		deps.repo.EXPECT().FindByID(gomock.Any(), id).
			Return(&employee.Employee{ID: id, FirstName: strPtr("Ana"), Department: strPtr("Sales")}, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		res, err := deps.svc.Update(ctx, id.String(), employee.EmployeeRequest{
			ContactID:  types.Null[uuid.UUID](),
			Department: types.Some("Sales"),
		})

		require.NoError(t, err)
		assert.Nil(t, res.ContactID)
		assert.Equal(t, "Sales", *res.Department)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupService(t)
		dbtest.ExpectTx(deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.svc.Update(ctx, id.String(), employee.EmployeeRequest{})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success enqueues delete without data", func(t *testing.T) {
		deps := setupService(t)
		dbtest.ExpectTx(deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(gomock.Any(), id).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, "employee_deleted", e.EventType)
				assert.NotContains(t, string(e.Payload), `"data"`)
				return nil
			})

		require.NoError(t, deps.svc.Delete(ctx, id.String()))
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupService(t)
		dbtest.ExpectTx(deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(gomock.Any(), id).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("outbox down"))

		err := deps.svc.Delete(ctx, id.String())

		assert.EqualError(t, err, "outbox down")
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupService(t)

		err := deps.svc.Delete(ctx, "abc")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}
