package report

import (
	"context"

	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	reporterrors "github.com/miguelF21/Facepay/internal/report/errors"
	"github.com/miguelF21/Facepay/internal/shared/apperror"
	"github.com/miguelF21/Facepay/internal/shared/contextutil"
	"github.com/miguelF21/Facepay/internal/shared/dberr"
	"github.com/miguelF21/Facepay/internal/shared/listquery"
	"github.com/miguelF21/Facepay/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resourceName = "report"

var ListDefinition = listquery.Definition{
	Search: []string{"title"},
	Ordering: []listquery.Field{
		{Name: "generated_at", Column: "generated_at"},
	},
	DefaultOrder: "id",
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q listquery.Query) ([]ReportResponse, int64, error)
	GetByID(ctx context.Context, id string) (ReportResponse, error)
	Create(ctx context.Context, req ReportRequest) (ReportResponse, error)
	Update(ctx context.Context, id string, req ReportRequest) (ReportResponse, error)
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
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) GetAll(ctx context.Context, q listquery.Query) ([]ReportResponse, int64, error) {
	reports, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all reports failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(reports), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ReportResponse, error) {
	reportID, err := uuid.Parse(id)
	if err != nil {
		return ReportResponse{}, reporterrors.ErrInvalidReportID
	}

	rep, err := s.repo.FindByID(ctx, reportID)
	if err != nil {
		s.logger.Warn("get report by id failed", zap.String("report_id", id), zap.Error(err))
		return ReportResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*rep), nil
}

func (s *service) Create(ctx context.Context, req ReportRequest) (ReportResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create report requested", zap.String("request_id", rid))

	rep := &Report{ID: uuid.New()}
	applyRequest(rep, req)

	var created *Report
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := s.checkAdmin(ctx, tx, rep); err != nil {
			return err
		}
		if err := qtx.Create(ctx, rep); err != nil {
			return mapRepositoryError(err)
		}
		fresh, err := qtx.FindByID(ctx, rep.ID)
		if err != nil {
			return mapRepositoryError(err)
		}
		created = fresh
		return s.recordChange(ctx, tx, events.ActionCreated, fresh)
	})
	if err != nil {
		s.logger.Error("create report failed", zap.String("request_id", rid), zap.Error(err))
		return ReportResponse{}, err
	}

	s.logger.Info("create report success",
		zap.String("request_id", rid),
		zap.String("report_id", created.ID.String()),
	)
	return ToResponse(*created), nil
}

func (s *service) Update(ctx context.Context, id string, req ReportRequest) (ReportResponse, error) {
	reportID, err := uuid.Parse(id)
	if err != nil {
		return ReportResponse{}, reporterrors.ErrInvalidReportID
	}

	var updated *Report
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		rep, err := qtx.FindByID(ctx, reportID)
		if err != nil {
			return mapRepositoryError(err)
		}
		applyRequest(rep, req)
		if err := s.checkAdmin(ctx, tx, rep); err != nil {
			return err
		}
		if err := qtx.Update(ctx, rep); err != nil {
			return mapRepositoryError(err)
		}
		fresh, err := qtx.FindByID(ctx, reportID)
		if err != nil {
			return mapRepositoryError(err)
		}
		updated = fresh
		return s.recordChange(ctx, tx, events.ActionUpdated, fresh)
	})
	if err != nil {
		s.logger.Warn("update report failed", zap.String("report_id", id), zap.Error(err))
		return ReportResponse{}, err
	}

	s.logger.Info("update report success", zap.String("report_id", id))
	return ToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	reportID, err := uuid.Parse(id)
	if err != nil {
		return reporterrors.ErrInvalidReportID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(ctx, reportID); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionDeleted, &Report{ID: reportID})
	})
	if err != nil {
		s.logger.Warn("delete report failed", zap.String("report_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete report success", zap.String("report_id", id))
	return nil
}

func (s *service) recordChange(ctx context.Context, tx *gorm.DB, action string, rep *Report) error {
	if s.outbox == nil {
		return nil
	}
	var data any
	if action != events.ActionDeleted {
		data = ToResponse(*rep)
	}
	return kafka.EnqueueResourceChange(ctx, s.outbox.WithTx(tx), resourceName, action, rep.ID.String(), data)
}

// checkAdmin rejects reports whose admin is missing or not an admin.
func (s *service) checkAdmin(ctx context.Context, tx *gorm.DB, rep *Report) error {
	if rep.AdminID == nil {
		return nil
	}
	role, err := s.repo.WithTx(tx).UserRole(ctx, *rep.AdminID)
	if err != nil {
		if dberr.Classify(err) == dberr.KindNotFound {
			return apperror.ErrInvalidReference
		}
		return err
	}
	if role != user.RoleAdmin {
		return reporterrors.ErrAdminRoleRequired
	}
	return nil
}
