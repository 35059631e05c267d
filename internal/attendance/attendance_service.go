package attendance

import (
	"context"

	attendanceerrors "github.com/miguelF21/Facepay/internal/attendance/errors"
	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	"github.com/miguelF21/Facepay/internal/shared/contextutil"
	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resourceName = "attendance_record"

var ListDefinition = listquery.Definition{
	Filters: []listquery.Field{
		{Name: "employee_id", Column: "employee_id", Kind: listquery.UUID},
		{Name: "date", Column: "date", Kind: listquery.Date},
		{Name: "status", Column: "status", Kind: listquery.Bool},
	},
	Ordering: []listquery.Field{
		{Name: "date", Column: "date"},
		{Name: "check_in", Column: "check_in"},
	},
	DefaultOrder: "id",
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q listquery.Query) ([]AttendanceResponse, int64, error)
	GetByID(ctx context.Context, id string) (AttendanceResponse, error)
	Create(ctx context.Context, req AttendanceRequest) (AttendanceResponse, error)
	Update(ctx context.Context, id string, req AttendanceRequest) (AttendanceResponse, error)
	Patch(ctx context.Context, id string, req AttendancePatchRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(db *gorm.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) GetAll(ctx context.Context, q listquery.Query) ([]AttendanceResponse, int64, error) {
	rows, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all attendance records failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(rows), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AttendanceResponse, error) {
	attendanceID, err := uuid.Parse(id)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}

	a, err := s.repo.FindByID(ctx, attendanceID)
	if err != nil {
		s.logger.Warn("get attendance record by id failed", zap.String("attendance_id", id), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*a), nil
}

func (s *service) Create(ctx context.Context, req AttendanceRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create attendance record requested", zap.String("request_id", rid))

	a := &Attendance{ID: uuid.New(), Date: today(), Status: true}
	applyPatch(a, req.toPatch())

	var created *Attendance
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, a); err != nil {
			return mapRepositoryError(err)
		}
		fresh, err := qtx.FindByID(ctx, a.ID)
		if err != nil {
			return mapRepositoryError(err)
		}
		created = fresh
		return s.recordChange(ctx, tx, events.ActionCreated, fresh)
	})
	if err != nil {
		s.logger.Error("create attendance record failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("create attendance record success",
		zap.String("request_id", rid),
		zap.String("attendance_id", created.ID.String()),
	)
	return ToResponse(*created), nil
}

func (s *service) Update(ctx context.Context, id string, req AttendanceRequest) (AttendanceResponse, error) {
	return s.Patch(ctx, id, req.toPatch())
}

func (s *service) Patch(ctx context.Context, id string, req AttendancePatchRequest) (AttendanceResponse, error) {
	attendanceID, err := uuid.Parse(id)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}

	var updated *Attendance
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		a, err := qtx.FindByID(ctx, attendanceID)
		if err != nil {
			return mapRepositoryError(err)
		}
		applyPatch(a, req)
		if err := qtx.Update(ctx, a); err != nil {
			return mapRepositoryError(err)
		}
		fresh, err := qtx.FindByID(ctx, attendanceID)
		if err != nil {
			return mapRepositoryError(err)
		}
		updated = fresh
		return s.recordChange(ctx, tx, events.ActionUpdated, fresh)
	})
	if err != nil {
		s.logger.Warn("update attendance record failed", zap.String("attendance_id", id), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("update attendance record success", zap.String("attendance_id", id))
	return ToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	attendanceID, err := uuid.Parse(id)
	if err != nil {
		return attendanceerrors.ErrInvalidAttendanceID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(ctx, attendanceID); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionDeleted, &Attendance{ID: attendanceID})
	})
	if err != nil {
		s.logger.Warn("delete attendance record failed", zap.String("attendance_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete attendance record success", zap.String("attendance_id", id))
	return nil
}

func (s *service) recordChange(ctx context.Context, tx *gorm.DB, action string, a *Attendance) error {
	if s.outbox == nil {
		return nil
	}
	var data any
	if action != events.ActionDeleted {
		data = ToResponse(*a)
	}
	return kafka.EnqueueResourceChange(ctx, s.outbox.WithTx(tx), resourceName, action, a.ID.String(), data)
}
