package payroll

import (
	"context"

	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	payrollerrors "github.com/miguelF21/Facepay/internal/payroll/errors"
	"github.com/miguelF21/Facepay/internal/shared/contextutil"
	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resourceName = "payroll_record"

var ListDefinition = listquery.Definition{
	Filters: []listquery.Field{
		{Name: "employee_id", Column: "employee_id", Kind: listquery.UUID},
		{Name: "period_start", Column: "period_start", Kind: listquery.Date},
		{Name: "period_end", Column: "period_end", Kind: listquery.Date},
	},
	Ordering: []listquery.Field{
		{Name: "period_start", Column: "period_start"},
		{Name: "period_end", Column: "period_end"},
	},
	DefaultOrder: "id",
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q listquery.Query) ([]PayrollResponse, int64, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	Create(ctx context.Context, req PayrollRequest) (PayrollResponse, error)
	Update(ctx context.Context, id string, req PayrollRequest) (PayrollResponse, error)
	Patch(ctx context.Context, id string, req PayrollPatchRequest) (PayrollResponse, error)
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
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) GetAll(ctx context.Context, q listquery.Query) ([]PayrollResponse, int64, error) {
	payrolls, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all payroll records failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(payrolls), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	payrollID, err := uuid.Parse(id)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPayrollID
	}

	p, err := s.repo.FindByID(ctx, payrollID)
	if err != nil {
		s.logger.Warn("get payroll record by id failed", zap.String("payroll_id", id), zap.Error(err))
		return PayrollResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*p), nil
}

func (s *service) Create(ctx context.Context, req PayrollRequest) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create payroll record requested", zap.String("request_id", rid))

	p := &Payroll{ID: uuid.New()}
	applyPatch(p, req.toPatch())

	var created *Payroll
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, p); err != nil {
			return mapRepositoryError(err)
		}
		fresh, err := qtx.FindByID(ctx, p.ID)
		if err != nil {
			return mapRepositoryError(err)
		}
		created = fresh
		return s.recordChange(ctx, tx, events.ActionCreated, fresh)
	})
	if err != nil {
		s.logger.Error("create payroll record failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollResponse{}, err
	}

	s.logger.Info("create payroll record success",
		zap.String("request_id", rid),
		zap.String("payroll_id", created.ID.String()),
	)
	return ToResponse(*created), nil
}

func (s *service) Update(ctx context.Context, id string, req PayrollRequest) (PayrollResponse, error) {
	return s.Patch(ctx, id, req.toPatch())
}

func (s *service) Patch(ctx context.Context, id string, req PayrollPatchRequest) (PayrollResponse, error) {
	payrollID, err := uuid.Parse(id)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPayrollID
	}

	var updated *Payroll
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		p, err := qtx.FindByID(ctx, payrollID)
		if err != nil {
			return mapRepositoryError(err)
		}
		applyPatch(p, req)
		if err := qtx.Update(ctx, p); err != nil {
			return mapRepositoryError(err)
		}
		fresh, err := qtx.FindByID(ctx, payrollID)
		if err != nil {
			return mapRepositoryError(err)
		}
		updated = fresh
		return s.recordChange(ctx, tx, events.ActionUpdated, fresh)
	})
	if err != nil {
		s.logger.Warn("update payroll record failed", zap.String("payroll_id", id), zap.Error(err))
		return PayrollResponse{}, err
	}

	s.logger.Info("update payroll record success", zap.String("payroll_id", id))
	return ToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	payrollID, err := uuid.Parse(id)
	if err != nil {
		return payrollerrors.ErrInvalidPayrollID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(ctx, payrollID); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionDeleted, &Payroll{ID: payrollID})
	})
	if err != nil {
		s.logger.Warn("delete payroll record failed", zap.String("payroll_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete payroll record success", zap.String("payroll_id", id))
	return nil
}

func (s *service) recordChange(ctx context.Context, tx *gorm.DB, action string, p *Payroll) error {
	if s.outbox == nil {
		return nil
	}
	var data any
	if action != events.ActionDeleted {
		data = ToResponse(*p)
	}
	return kafka.EnqueueResourceChange(ctx, s.outbox.WithTx(tx), resourceName, action, p.ID.String(), data)
}
