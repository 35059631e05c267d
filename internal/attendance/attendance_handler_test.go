package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/miguelF21/Facepay/internal/attendance"
	"github.com/miguelF21/Facepay/internal/shared/apperror"
	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeService struct {
	getAllFn  func(ctx context.Context, q listquery.Query) ([]attendance.AttendanceResponse, int64, error)
	getByIDFn func(ctx context.Context, id string) (attendance.AttendanceResponse, error)
	createFn  func(ctx context.Context, req attendance.AttendanceRequest) (attendance.AttendanceResponse, error)
	updateFn  func(ctx context.Context, id string, req attendance.AttendanceRequest) (attendance.AttendanceResponse, error)
	patchFn   func(ctx context.Context, id string, req attendance.AttendancePatchRequest) (attendance.AttendanceResponse, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (f *fakeService) GetAll(ctx context.Context, q listquery.Query) ([]attendance.AttendanceResponse, int64, error) {
	return f.getAllFn(ctx, q)
}
func (f *fakeService) GetByID(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeService) Create(ctx context.Context, req attendance.AttendanceRequest) (attendance.AttendanceResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeService) Update(ctx context.Context, id string, req attendance.AttendanceRequest) (attendance.AttendanceResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeService) Patch(ctx context.Context, id string, req attendance.AttendancePatchRequest) (attendance.AttendanceResponse, error) {
	return f.patchFn(ctx, id, req)
}
func (f *fakeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func newRouter(svc attendance.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	attendance.RegisterRoutes(r.Group("/api/v1"), attendance.NewHandler(svc, zap.NewNop()))
	return r
}

func TestHandler_CreateAndPut(t *testing.T) {
	employeeID := uuid.New()
	svc := &fakeService{
		createFn: func(_ context.Context, req attendance.AttendanceRequest) (attendance.AttendanceResponse, error) {
			assert.Equal(t, employeeID, req.EmployeeID)
			require.NotNil(t, req.CheckIn.Value)
			assert.Equal(t, "08:00:00", req.CheckIn.Value.String())
			return attendance.AttendanceResponse{ID: "a-1", EmployeeID: employeeID.String(), CheckIn: req.CheckIn.Value}, nil
		},
		updateFn: func(_ context.Context, id string, req attendance.AttendanceRequest) (attendance.AttendanceResponse, error) {
			assert.Equal(t, "a-1", id)
			return attendance.AttendanceResponse{ID: id}, nil
		},
	}
	r := newRouter(svc)

	body := `{"employee_id":"` + employeeID.String() + `","check_in":"08:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance-records", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"check_in":"08:00:00"`)

	req = httptest.NewRequest(http.MethodPut, "/api/v1/attendance-records/a-1", strings.NewReader(`{"check_in":"08:00"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Employee Id is required")
}

func TestHandler_RejectsBadClockTime(t *testing.T) {
	r := newRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/attendance-records/a-1", strings.NewReader(`{"check_out":"late"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
