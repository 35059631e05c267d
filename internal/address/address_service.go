package address

import (
	"context"

	addresserrors "github.com/miguelF21/Facepay/internal/address/errors"
	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resourceName = "address"

var ListDefinition = listquery.Definition{
	Filters: []listquery.Field{
		{Name: "city", Column: "city", Kind: listquery.String},
		{Name: "state", Column: "state", Kind: listquery.String},
	},
	Search:       []string{"street", "city", "state"},
	DefaultOrder: "id",
}

//go:generate mockgen -source=address_service.go -destination=mock/address_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q listquery.Query) ([]AddressResponse, int64, error)
	GetByID(ctx context.Context, id string) (AddressResponse, error)
	Create(ctx context.Context, req AddressRequest) (AddressResponse, error)
	Update(ctx context.Context, id string, req AddressRequest) (AddressResponse, error)
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
	l := zap.L().Named("address.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("address.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) GetAll(ctx context.Context, q listquery.Query) ([]AddressResponse, int64, error) {
	addresses, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all addresses failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(addresses), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AddressResponse, error) {
	addressID, err := uuid.Parse(id)
	if err != nil {
		return AddressResponse{}, addresserrors.ErrInvalidAddressID
	}

	a, err := s.repo.FindByID(ctx, addressID)
	if err != nil {
		return AddressResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*a), nil
}

func (s *service) Create(ctx context.Context, req AddressRequest) (AddressResponse, error) {
	a := &Address{ID: uuid.New()}
	applyRequest(a, req)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, a); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionCreated, a)
	})
	if err != nil {
		s.logger.Error("create address failed", zap.Error(err))
		return AddressResponse{}, err
	}

	s.logger.Info("create address success", zap.String("address_id", a.ID.String()))
	return ToResponse(*a), nil
}

func (s *service) Update(ctx context.Context, id string, req AddressRequest) (AddressResponse, error) {
	addressID, err := uuid.Parse(id)
	if err != nil {
		return AddressResponse{}, addresserrors.ErrInvalidAddressID
	}

	var updated *Address
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		a, err := qtx.FindByID(ctx, addressID)
		if err != nil {
			return mapRepositoryError(err)
		}
		applyRequest(a, req)
		if err := qtx.Update(ctx, a); err != nil {
			return mapRepositoryError(err)
		}
		updated = a
		return s.recordChange(ctx, tx, events.ActionUpdated, a)
	})
	if err != nil {
		s.logger.Warn("update address failed", zap.String("address_id", id), zap.Error(err))
		return AddressResponse{}, err
	}

	s.logger.Info("update address success", zap.String("address_id", id))
	return ToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	addressID, err := uuid.Parse(id)
	if err != nil {
		return addresserrors.ErrInvalidAddressID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(ctx, addressID); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionDeleted, &Address{ID: addressID})
	})
	if err != nil {
		s.logger.Warn("delete address failed", zap.String("address_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete address success", zap.String("address_id", id))
	return nil
}

func (s *service) recordChange(ctx context.Context, tx *gorm.DB, action string, a *Address) error {
	if s.outbox == nil {
		return nil
	}
	var data any
	if action != events.ActionDeleted {
		data = ToResponse(*a)
	}
	return kafka.EnqueueResourceChange(ctx, s.outbox.WithTx(tx), resourceName, action, a.ID.String(), data)
}
