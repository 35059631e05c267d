package recognition

import (
	"context"

	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	recognitionerrors "github.com/miguelF21/Facepay/internal/recognition/errors"
	"github.com/miguelF21/Facepay/internal/shared/contextutil"
	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resourceName = "recognition_result"

var ListDefinition = listquery.Definition{
	Filters: []listquery.Field{
		{Name: "match", Column: "match", Kind: listquery.Bool},
		{Name: "employee_id", Column: "employee_id", Kind: listquery.UUID},
	},
	Ordering: []listquery.Field{
		{Name: "timestamp", Column: "timestamp"},
		{Name: "confidence", Column: "confidence"},
	},
	DefaultOrder: "id",
}

//go:generate mockgen -source=recognition_service.go -destination=mock/recognition_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q listquery.Query) ([]RecognitionResultResponse, int64, error)
	GetByID(ctx context.Context, id string) (RecognitionResultResponse, error)
	Create(ctx context.Context, req RecognitionResultRequest) (RecognitionResultResponse, error)
	Update(ctx context.Context, id string, req RecognitionResultRequest) (RecognitionResultResponse, error)
	Patch(ctx context.Context, id string, req RecognitionResultPatchRequest) (RecognitionResultResponse, error)
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
	l := zap.L().Named("recognition.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("recognition.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) GetAll(ctx context.Context, q listquery.Query) ([]RecognitionResultResponse, int64, error) {
	results, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all recognition results failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(results), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (RecognitionResultResponse, error) {
	resultID, err := uuid.Parse(id)
	if err != nil {
		return RecognitionResultResponse{}, recognitionerrors.ErrInvalidRecognitionResultID
	}

	result, err := s.repo.FindByID(ctx, resultID)
	if err != nil {
		s.logger.Warn("get recognition result by id failed", zap.String("recognition_id", id), zap.Error(err))
		return RecognitionResultResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*result), nil
}

func (s *service) Create(ctx context.Context, req RecognitionResultRequest) (RecognitionResultResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create recognition result requested", zap.String("request_id", rid))

	result := &RecognitionResult{ID: uuid.New()}
	applyPatch(result, req.toPatch())

	var created *RecognitionResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, result); err != nil {
			return mapRepositoryError(err)
		}
		fresh, err := qtx.FindByID(ctx, result.ID)
		if err != nil {
			return mapRepositoryError(err)
		}
		created = fresh
		return s.recordChange(ctx, tx, events.ActionCreated, fresh)
	})
	if err != nil {
		s.logger.Error("create recognition result failed", zap.String("request_id", rid), zap.Error(err))
		return RecognitionResultResponse{}, err
	}

	s.logger.Info("create recognition result success",
		zap.String("request_id", rid),
		zap.String("recognition_id", created.ID.String()),
	)
	return ToResponse(*created), nil
}

func (s *service) Update(ctx context.Context, id string, req RecognitionResultRequest) (RecognitionResultResponse, error) {
	return s.Patch(ctx, id, req.toPatch())
}

func (s *service) Patch(ctx context.Context, id string, req RecognitionResultPatchRequest) (RecognitionResultResponse, error) {
	resultID, err := uuid.Parse(id)
	if err != nil {
		return RecognitionResultResponse{}, recognitionerrors.ErrInvalidRecognitionResultID
	}

	var updated *RecognitionResult
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		result, err := qtx.FindByID(ctx, resultID)
		if err != nil {
			return mapRepositoryError(err)
		}
		applyPatch(result, req)
		if err := qtx.Update(ctx, result); err != nil {
			return mapRepositoryError(err)
		}
		fresh, err := qtx.FindByID(ctx, resultID)
		if err != nil {
			return mapRepositoryError(err)
		}
		updated = fresh
		return s.recordChange(ctx, tx, events.ActionUpdated, fresh)
	})
	if err != nil {
		s.logger.Warn("update recognition result failed", zap.String("recognition_id", id), zap.Error(err))
		return RecognitionResultResponse{}, err
	}

	s.logger.Info("update recognition result success", zap.String("recognition_id", id))
	return ToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	resultID, err := uuid.Parse(id)
	if err != nil {
		return recognitionerrors.ErrInvalidRecognitionResultID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(ctx, resultID); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionDeleted, &RecognitionResult{ID: resultID})
	})
	if err != nil {
		s.logger.Warn("delete recognition result failed", zap.String("recognition_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete recognition result success", zap.String("recognition_id", id))
	return nil
}

func (s *service) recordChange(ctx context.Context, tx *gorm.DB, action string, result *RecognitionResult) error {
	if s.outbox == nil {
		return nil
	}
	var data any
	if action != events.ActionDeleted {
		data = ToResponse(*result)
	}
	return kafka.EnqueueResourceChange(ctx, s.outbox.WithTx(tx), resourceName, action, result.ID.String(), data)
}
