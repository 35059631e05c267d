package receipt

import (
	"context"

	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	receipterrors "github.com/miguelF21/Facepay/internal/receipt/errors"
	"github.com/miguelF21/Facepay/internal/shared/contextutil"
	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resourceName = "pay_receipt"

var ListDefinition = listquery.Definition{
	Filters: []listquery.Field{
		{Name: "employee_id", Column: "employee_id", Kind: listquery.UUID},
		{Name: "payroll_id", Column: "payroll_id", Kind: listquery.UUID},
	},
	Ordering: []listquery.Field{
		{Name: "generated_at", Column: "generated_at"},
	},
	DefaultOrder: "id",
}

//go:generate mockgen -source=receipt_service.go -destination=mock/receipt_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q listquery.Query) ([]PayReceiptResponse, int64, error)
	GetByID(ctx context.Context, id string) (PayReceiptResponse, error)
	Create(ctx context.Context, req PayReceiptRequest) (PayReceiptResponse, error)
	Update(ctx context.Context, id string, req PayReceiptRequest) (PayReceiptResponse, error)
	Patch(ctx context.Context, id string, req PayReceiptPatchRequest) (PayReceiptResponse, error)
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
	l := zap.L().Named("receipt.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("receipt.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) GetAll(ctx context.Context, q listquery.Query) ([]PayReceiptResponse, int64, error) {
	receipts, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all pay receipts failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(receipts), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayReceiptResponse, error) {
	receiptID, err := uuid.Parse(id)
	if err != nil {
		return PayReceiptResponse{}, receipterrors.ErrInvalidPayReceiptID
	}

	pr, err := s.repo.FindByID(ctx, receiptID)
	if err != nil {
		s.logger.Warn("get pay receipt by id failed", zap.String("receipt_id", id), zap.Error(err))
		return PayReceiptResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*pr), nil
}

func (s *service) Create(ctx context.Context, req PayReceiptRequest) (PayReceiptResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create pay receipt requested", zap.String("request_id", rid))

	pr := &PayReceipt{ID: uuid.New()}
	applyPatch(pr, req.toPatch())

	var created *PayReceipt
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, pr); err != nil {
			return mapRepositoryError(err)
		}
		fresh, err := qtx.FindByID(ctx, pr.ID)
		if err != nil {
			return mapRepositoryError(err)
		}
		created = fresh
		return s.recordChange(ctx, tx, events.ActionCreated, fresh)
	})
	if err != nil {
		s.logger.Error("create pay receipt failed", zap.String("request_id", rid), zap.Error(err))
		return PayReceiptResponse{}, err
	}

	s.logger.Info("create pay receipt success",
		zap.String("request_id", rid),
		zap.String("receipt_id", created.ID.String()),
	)
	return ToResponse(*created), nil
}

func (s *service) Update(ctx context.Context, id string, req PayReceiptRequest) (PayReceiptResponse, error) {
	return s.Patch(ctx, id, req.toPatch())
}

func (s *service) Patch(ctx context.Context, id string, req PayReceiptPatchRequest) (PayReceiptResponse, error) {
	receiptID, err := uuid.Parse(id)
	if err != nil {
		return PayReceiptResponse{}, receipterrors.ErrInvalidPayReceiptID
	}

	var updated *PayReceipt
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		pr, err := qtx.FindByID(ctx, receiptID)
		if err != nil {
			return mapRepositoryError(err)
		}
		applyPatch(pr, req)
		if err := qtx.Update(ctx, pr); err != nil {
			return mapRepositoryError(err)
		}
		fresh, err := qtx.FindByID(ctx, receiptID)
		if err != nil {
			return mapRepositoryError(err)
		}
		updated = fresh
		return s.recordChange(ctx, tx, events.ActionUpdated, fresh)
	})
	if err != nil {
		s.logger.Warn("update pay receipt failed", zap.String("receipt_id", id), zap.Error(err))
		return PayReceiptResponse{}, err
	}

	s.logger.Info("update pay receipt success", zap.String("receipt_id", id))
	return ToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	receiptID, err := uuid.Parse(id)
	if err != nil {
		return receipterrors.ErrInvalidPayReceiptID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(ctx, receiptID); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionDeleted, &PayReceipt{ID: receiptID})
	})
	if err != nil {
		s.logger.Warn("delete pay receipt failed", zap.String("receipt_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete pay receipt success", zap.String("receipt_id", id))
	return nil
}

func (s *service) recordChange(ctx context.Context, tx *gorm.DB, action string, pr *PayReceipt) error {
	if s.outbox == nil {
		return nil
	}
	var data any
	if action != events.ActionDeleted {
		data = ToResponse(*pr)
	}
	return kafka.EnqueueResourceChange(ctx, s.outbox.WithTx(tx), resourceName, action, pr.ID.String(), data)
}
