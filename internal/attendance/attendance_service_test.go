package attendance_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/miguelF21/Facepay/internal/address"
	"github.com/miguelF21/Facepay/internal/attendance"
	attendanceerrors "github.com/miguelF21/Facepay/internal/attendance/errors"
	"github.com/miguelF21/Facepay/internal/contact"
	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/shared/dbtest"
	"github.com/miguelF21/Facepay/internal/shared/types"
	"github.com/miguelF21/Facepay/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (attendance.Service, *gorm.DB, uuid.UUID) {
	t.Helper()
	db := dbtest.NewSQLite(t,
		&user.User{}, &contact.Contact{}, &address.Address{},
		&employee.Employee{}, &attendance.Attendance{},
	)
	e := employee.Employee{ID: uuid.New()}
	require.NoError(t, db.Create(&e).Error)
	return attendance.NewService(db, attendance.NewRepository(db), zap.NewNop()), db, e.ID
}

func clock(t *testing.T, s string) types.Nullable[types.ClockTime] {
	t.Helper()
	c, err := types.ParseClockTime(s)
	require.NoError(t, err)
	return types.Some(c)
}

func TestAttendanceService_CreateSetsDateAndStatus(t *testing.T) {
	svc, _, employeeID := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, attendance.AttendanceRequest{
		EmployeeID: employeeID,
		CheckIn:    clock(t, "08:02"),
	})

	require.NoError(t, err)
	assert.True(t, created.Status)
	assert.Equal(t, types.NewDate(time.Now().UTC()).String(), created.Date.String())
	assert.Equal(t, "08:02:00", created.CheckIn.String())
	assert.Nil(t, created.CheckOut)
	require.NotNil(t, created.Employee)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Date.String(), got.Date.String())
	assert.Equal(t, "08:02:00", got.CheckIn.String())
}

func TestAttendanceService_CheckOutBeforeCheckInIsAccepted(t *testing.T) {
	svc, _, employeeID := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, attendance.AttendanceRequest{
		EmployeeID: employeeID,
		CheckIn:    clock(t, "17:00:00"),
	})
	require.NoError(t, err)

	updated, err := svc.Patch(ctx, created.ID, attendance.AttendancePatchRequest{CheckOut: clock(t, "07:30:00")})

	require.NoError(t, err)
	assert.Equal(t, "07:30:00", updated.CheckOut.String())
	assert.Equal(t, "17:00:00", updated.CheckIn.String())
}

func TestAttendanceService_FilterByDateAndStatus(t *testing.T) {
	svc, _, employeeID := setupService(t)
	ctx := context.Background()

	absent := false
	first, err := svc.Create(ctx, attendance.AttendanceRequest{EmployeeID: employeeID})
	require.NoError(t, err)
	_, err = svc.Create(ctx, attendance.AttendanceRequest{EmployeeID: employeeID, Status: &absent})
	require.NoError(t, err)

	q, err := attendance.ListDefinition.Parse(url.Values{
		"date":   {first.Date.String()},
		"status": {"true"},
	})
	require.NoError(t, err)

	res, total, err := svc.GetAll(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, first.ID, res[0].ID)

	_, err = attendance.ListDefinition.Parse(url.Values{"date": {"19/10/2026"}})
	assert.Error(t, err)
}

func TestAttendanceService_EmployeeDeleteCascades(t *testing.T) {
	svc, db, employeeID := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, attendance.AttendanceRequest{EmployeeID: employeeID})
	require.NoError(t, err)

	require.NoError(t, db.Delete(&employee.Employee{}, "id = ?", employeeID).Error)

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
}

func TestAttendanceService_ClockTimesArePersisted(t *testing.T) {
	svc, db, employeeID := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, attendance.AttendanceRequest{
		EmployeeID: employeeID,
		CheckIn:    clock(t, "17:00:00"),
		CheckOut:   clock(t, "23:45"),
	})
	require.NoError(t, err)

	var row struct {
		CheckIn  string
		CheckOut string
	}
	require.NoError(t, db.Raw("SELECT check_in, check_out FROM attendance_records WHERE id = ?", created.ID).Scan(&row).Error)
	assert.Equal(t, "17:00:00", row.CheckIn)
	assert.Equal(t, "23:45:00", row.CheckOut)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CheckIn)
	require.NotNil(t, got.CheckOut)
	assert.Equal(t, "17:00:00", got.CheckIn.String())
	assert.Equal(t, "23:45:00", got.CheckOut.String())
}
