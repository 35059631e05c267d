package biometric

import (
	"context"

	biometricerrors "github.com/miguelF21/Facepay/internal/biometric/errors"
	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	"github.com/miguelF21/Facepay/internal/shared/contextutil"
	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resourceName = "biometric_data"

var ListDefinition = listquery.Definition{
	Filters: []listquery.Field{
		{Name: "type", Column: "type"},
		{Name: "employee_id", Column: "employee_id", Kind: listquery.UUID},
		{Name: "terminal_id", Column: "terminal_id", Kind: listquery.UUID},
	},
	Ordering: []listquery.Field{
		{Name: "registered_at", Column: "registered_at"},
	},
	DefaultOrder: "id",
}

//go:generate mockgen -source=biometric_service.go -destination=mock/biometric_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q listquery.Query) ([]BiometricDataResponse, int64, error)
	GetByID(ctx context.Context, id string) (BiometricDataResponse, error)
	Create(ctx context.Context, req BiometricDataRequest) (BiometricDataResponse, error)
	Update(ctx context.Context, id string, req BiometricDataRequest) (BiometricDataResponse, error)
	Patch(ctx context.Context, id string, req BiometricDataPatchRequest) (BiometricDataResponse, error)
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
	l := zap.L().Named("biometric.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("biometric.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) GetAll(ctx context.Context, q listquery.Query) ([]BiometricDataResponse, int64, error) {
	records, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all biometric data failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(records), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (BiometricDataResponse, error) {
	biometricID, err := uuid.Parse(id)
	if err != nil {
		return BiometricDataResponse{}, biometricerrors.ErrInvalidBiometricDataID
	}

	b, err := s.repo.FindByID(ctx, biometricID)
	if err != nil {
		s.logger.Warn("get biometric data by id failed", zap.String("biometric_id", id), zap.Error(err))
		return BiometricDataResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*b), nil
}

func (s *service) Create(ctx context.Context, req BiometricDataRequest) (BiometricDataResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create biometric data requested", zap.String("request_id", rid))

	b := &BiometricData{ID: uuid.New()}
	applyPatch(b, req.toPatch())

	var created *BiometricData
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, b); err != nil {
			return mapRepositoryError(err)
		}
		fresh, err := qtx.FindByID(ctx, b.ID)
		if err != nil {
			return mapRepositoryError(err)
		}
		created = fresh
		return s.recordChange(ctx, tx, events.ActionCreated, fresh)
	})
	if err != nil {
		s.logger.Error("create biometric data failed", zap.String("request_id", rid), zap.Error(err))
		return BiometricDataResponse{}, err
	}

	s.logger.Info("create biometric data success",
		zap.String("request_id", rid),
		zap.String("biometric_id", created.ID.String()),
	)
	return ToResponse(*created), nil
}

func (s *service) Update(ctx context.Context, id string, req BiometricDataRequest) (BiometricDataResponse, error) {
	return s.Patch(ctx, id, req.toPatch())
}

func (s *service) Patch(ctx context.Context, id string, req BiometricDataPatchRequest) (BiometricDataResponse, error) {
	biometricID, err := uuid.Parse(id)
	if err != nil {
		return BiometricDataResponse{}, biometricerrors.ErrInvalidBiometricDataID
	}

	var updated *BiometricData
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		b, err := qtx.FindByID(ctx, biometricID)
		if err != nil {
			return mapRepositoryError(err)
		}
		applyPatch(b, req)
		if err := qtx.Update(ctx, b); err != nil {
			return mapRepositoryError(err)
		}
		fresh, err := qtx.FindByID(ctx, biometricID)
		if err != nil {
			return mapRepositoryError(err)
		}
		updated = fresh
		return s.recordChange(ctx, tx, events.ActionUpdated, fresh)
	})
	if err != nil {
		s.logger.Warn("update biometric data failed", zap.String("biometric_id", id), zap.Error(err))
		return BiometricDataResponse{}, err
	}

	s.logger.Info("update biometric data success", zap.String("biometric_id", id))
	return ToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	biometricID, err := uuid.Parse(id)
	if err != nil {
		return biometricerrors.ErrInvalidBiometricDataID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(ctx, biometricID); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionDeleted, &BiometricData{ID: biometricID})
	})
	if err != nil {
		s.logger.Warn("delete biometric data failed", zap.String("biometric_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete biometric data success", zap.String("biometric_id", id))
	return nil
}

func (s *service) recordChange(ctx context.Context, tx *gorm.DB, action string, b *BiometricData) error {
	if s.outbox == nil {
		return nil
	}
	var data any
	if action != events.ActionDeleted {
		data = ToResponse(*b)
	}
	return kafka.EnqueueResourceChange(ctx, s.outbox.WithTx(tx), resourceName, action, b.ID.String(), data)
}
