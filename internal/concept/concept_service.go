package concept

import (
	"context"

	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	"github.com/miguelF21/Facepay/internal/shared/contextutil"
	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resourceName = "concept"

var ListDefinition = listquery.Definition{
	Filters: []listquery.Field{
		{Name: "payroll_id", Column: "payroll_id", Kind: listquery.UUID},
	},
	Search:       []string{"code", "description"},
	DefaultOrder: "code",
}

//go:generate mockgen -source=concept_service.go -destination=mock/concept_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q listquery.Query) ([]ConceptResponse, int64, error)
	GetByID(ctx context.Context, id string) (ConceptResponse, error)
	Create(ctx context.Context, req ConceptRequest) (ConceptResponse, error)
	Update(ctx context.Context, id string, req ConceptRequest) (ConceptResponse, error)
	Patch(ctx context.Context, id string, req ConceptPatchRequest) (ConceptResponse, error)
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
	l := zap.L().Named("concept.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("concept.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) GetAll(ctx context.Context, q listquery.Query) ([]ConceptResponse, int64, error) {
	concepts, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all concepts failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(concepts), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ConceptResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get concept by id failed", zap.String("code", id), zap.Error(err))
		return ConceptResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*c), nil
}

func (s *service) Create(ctx context.Context, req ConceptRequest) (ConceptResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create concept requested", zap.String("request_id", rid))

	c := &Concept{Code: req.Code}
	applyPatch(c, req.toPatch())

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, c); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionCreated, c)
	})
	if err != nil {
		s.logger.Error("create concept failed", zap.String("request_id", rid), zap.Error(err))
		return ConceptResponse{}, err
	}

	s.logger.Info("create concept success",
		zap.String("request_id", rid),
		zap.String("code", c.Code),
	)
	return ToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req ConceptRequest) (ConceptResponse, error) {
	return s.Patch(ctx, id, req.toPatch())
}

func (s *service) Patch(ctx context.Context, id string, req ConceptPatchRequest) (ConceptResponse, error) {
	var updated *Concept
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		c, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		applyPatch(c, req)
		if err := qtx.Update(ctx, c); err != nil {
			return mapRepositoryError(err)
		}
		updated = c
		return s.recordChange(ctx, tx, events.ActionUpdated, c)
	})
	if err != nil {
		s.logger.Warn("update concept failed", zap.String("code", id), zap.Error(err))
		return ConceptResponse{}, err
	}

	s.logger.Info("update concept success", zap.String("code", id))
	return ToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionDeleted, &Concept{Code: id})
	})
	if err != nil {
		s.logger.Warn("delete concept failed", zap.String("code", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete concept success", zap.String("code", id))
	return nil
}

func (s *service) recordChange(ctx context.Context, tx *gorm.DB, action string, c *Concept) error {
	if s.outbox == nil {
		return nil
	}
	var data any
	if action != events.ActionDeleted {
		data = ToResponse(*c)
	}
	return kafka.EnqueueResourceChange(ctx, s.outbox.WithTx(tx), resourceName, action, c.Code, data)
}
