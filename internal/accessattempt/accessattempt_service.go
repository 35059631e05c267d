package accessattempt

import (
	"context"

	accessattempterrors "github.com/miguelF21/Facepay/internal/accessattempt/errors"
	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	"github.com/miguelF21/Facepay/internal/shared/contextutil"
	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resourceName = "access_attempt"

var ListDefinition = listquery.Definition{
	Filters: []listquery.Field{
		{Name: "result", Column: "result"},
		{Name: "method", Column: "method"},
		{Name: "terminal_id", Column: "terminal_id", Kind: listquery.UUID},
		{Name: "employee_id", Column: "employee_id", Kind: listquery.UUID},
	},
	Ordering: []listquery.Field{
		{Name: "timestamp", Column: "timestamp"},
	},
	DefaultOrder: "id",
}

//go:generate mockgen -source=accessattempt_service.go -destination=mock/accessattempt_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q listquery.Query) ([]AccessAttemptResponse, int64, error)
	GetByID(ctx context.Context, id string) (AccessAttemptResponse, error)
	Create(ctx context.Context, req AccessAttemptRequest) (AccessAttemptResponse, error)
	Update(ctx context.Context, id string, req AccessAttemptRequest) (AccessAttemptResponse, error)
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
	l := zap.L().Named("accessattempt.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("accessattempt.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) GetAll(ctx context.Context, q listquery.Query) ([]AccessAttemptResponse, int64, error) {
	attempts, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all access attempts failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(attempts), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AccessAttemptResponse, error) {
	attemptID, err := uuid.Parse(id)
	if err != nil {
		return AccessAttemptResponse{}, accessattempterrors.ErrInvalidAccessAttemptID
	}

	a, err := s.repo.FindByID(ctx, attemptID)
	if err != nil {
		s.logger.Warn("get access attempt by id failed", zap.String("attempt_id", id), zap.Error(err))
		return AccessAttemptResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*a), nil
}

func (s *service) Create(ctx context.Context, req AccessAttemptRequest) (AccessAttemptResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create access attempt requested", zap.String("request_id", rid))

	a := &AccessAttempt{ID: uuid.New()}
	applyRequest(a, req)

	var created *AccessAttempt
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
		s.logger.Error("create access attempt failed", zap.String("request_id", rid), zap.Error(err))
		return AccessAttemptResponse{}, err
	}

	s.logger.Info("create access attempt success",
		zap.String("request_id", rid),
		zap.String("attempt_id", created.ID.String()),
	)
	return ToResponse(*created), nil
}

func (s *service) Update(ctx context.Context, id string, req AccessAttemptRequest) (AccessAttemptResponse, error) {
	attemptID, err := uuid.Parse(id)
	if err != nil {
		return AccessAttemptResponse{}, accessattempterrors.ErrInvalidAccessAttemptID
	}

	var updated *AccessAttempt
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		a, err := qtx.FindByID(ctx, attemptID)
		if err != nil {
			return mapRepositoryError(err)
		}
		applyRequest(a, req)
		if err := qtx.Update(ctx, a); err != nil {
			return mapRepositoryError(err)
		}
		fresh, err := qtx.FindByID(ctx, attemptID)
		if err != nil {
			return mapRepositoryError(err)
		}
		updated = fresh
		return s.recordChange(ctx, tx, events.ActionUpdated, fresh)
	})
	if err != nil {
		s.logger.Warn("update access attempt failed", zap.String("attempt_id", id), zap.Error(err))
		return AccessAttemptResponse{}, err
	}

	s.logger.Info("update access attempt success", zap.String("attempt_id", id))
	return ToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	attemptID, err := uuid.Parse(id)
	if err != nil {
		return accessattempterrors.ErrInvalidAccessAttemptID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(ctx, attemptID); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionDeleted, &AccessAttempt{ID: attemptID})
	})
	if err != nil {
		s.logger.Warn("delete access attempt failed", zap.String("attempt_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete access attempt success", zap.String("attempt_id", id))
	return nil
}

func (s *service) recordChange(ctx context.Context, tx *gorm.DB, action string, a *AccessAttempt) error {
	if s.outbox == nil {
		return nil
	}
	var data any
	if action != events.ActionDeleted {
		data = ToResponse(*a)
	}
	return kafka.EnqueueResourceChange(ctx, s.outbox.WithTx(tx), resourceName, action, a.ID.String(), data)
}
