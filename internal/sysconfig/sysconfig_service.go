package sysconfig

import (
	"context"

	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	"github.com/miguelF21/Facepay/internal/shared/contextutil"
	"github.com/miguelF21/Facepay/internal/shared/listquery"
	"github.com/miguelF21/Facepay/internal/shared/types"
	sysconfigerrors "github.com/miguelF21/Facepay/internal/sysconfig/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resourceName = "system_config"

var ListDefinition = listquery.Definition{DefaultOrder: "id"}

//go:generate mockgen -source=sysconfig_service.go -destination=mock/sysconfig_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q listquery.Query) ([]SystemConfigResponse, int64, error)
	GetByID(ctx context.Context, id string) (SystemConfigResponse, error)
	Create(ctx context.Context, req SystemConfigRequest) (SystemConfigResponse, error)
	Update(ctx context.Context, id string, req SystemConfigRequest) (SystemConfigResponse, error)
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
	l := zap.L().Named("sysconfig.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sysconfig.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) GetAll(ctx context.Context, q listquery.Query) ([]SystemConfigResponse, int64, error) {
	configs, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all system configs failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(configs), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (SystemConfigResponse, error) {
	configID, err := uuid.Parse(id)
	if err != nil {
		return SystemConfigResponse{}, sysconfigerrors.ErrInvalidSystemConfigID
	}

	cfg, err := s.repo.FindByID(ctx, configID)
	if err != nil {
		s.logger.Warn("get system config by id failed", zap.String("config_id", id), zap.Error(err))
		return SystemConfigResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*cfg), nil
}

func (s *service) Create(ctx context.Context, req SystemConfigRequest) (SystemConfigResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create system config requested", zap.String("request_id", rid))

	cfg := &SystemConfig{ID: uuid.New(), Settings: types.EmptyObject()}
	applyRequest(cfg, req)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, cfg); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionCreated, cfg)
	})
	if err != nil {
		s.logger.Error("create system config failed", zap.String("request_id", rid), zap.Error(err))
		return SystemConfigResponse{}, err
	}

	s.logger.Info("create system config success",
		zap.String("request_id", rid),
		zap.String("config_id", cfg.ID.String()),
	)
	return ToResponse(*cfg), nil
}

func (s *service) Update(ctx context.Context, id string, req SystemConfigRequest) (SystemConfigResponse, error) {
	configID, err := uuid.Parse(id)
	if err != nil {
		return SystemConfigResponse{}, sysconfigerrors.ErrInvalidSystemConfigID
	}

	var updated *SystemConfig
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		cfg, err := qtx.FindByID(ctx, configID)
		if err != nil {
			return mapRepositoryError(err)
		}
		applyRequest(cfg, req)
		if err := qtx.Update(ctx, cfg); err != nil {
			return mapRepositoryError(err)
		}
		updated = cfg
		return s.recordChange(ctx, tx, events.ActionUpdated, cfg)
	})
	if err != nil {
		s.logger.Warn("update system config failed", zap.String("config_id", id), zap.Error(err))
		return SystemConfigResponse{}, err
	}

	s.logger.Info("update system config success", zap.String("config_id", id))
	return ToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	configID, err := uuid.Parse(id)
	if err != nil {
		return sysconfigerrors.ErrInvalidSystemConfigID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(ctx, configID); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionDeleted, &SystemConfig{ID: configID})
	})
	if err != nil {
		s.logger.Warn("delete system config failed", zap.String("config_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete system config success", zap.String("config_id", id))
	return nil
}

func (s *service) recordChange(ctx context.Context, tx *gorm.DB, action string, cfg *SystemConfig) error {
	if s.outbox == nil {
		return nil
	}
	var data any
	if action != events.ActionDeleted {
		data = ToResponse(*cfg)
	}
	return kafka.EnqueueResourceChange(ctx, s.outbox.WithTx(tx), resourceName, action, cfg.ID.String(), data)
}
