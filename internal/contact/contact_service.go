package contact

import (
	"context"

	contacterrors "github.com/miguelF21/Facepay/internal/contact/errors"
	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resourceName = "contact"

var ListDefinition = listquery.Definition{
	Search:       []string{"phone", "email"},
	DefaultOrder: "id",
}

//go:generate mockgen -source=contact_service.go -destination=mock/contact_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q listquery.Query) ([]ContactResponse, int64, error)
	GetByID(ctx context.Context, id string) (ContactResponse, error)
	Create(ctx context.Context, req ContactRequest) (ContactResponse, error)
	Update(ctx context.Context, id string, req ContactRequest) (ContactResponse, error)
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
	l := zap.L().Named("contact.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contact.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) GetAll(ctx context.Context, q listquery.Query) ([]ContactResponse, int64, error) {
	contacts, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all contacts failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(contacts), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ContactResponse, error) {
	contactID, err := uuid.Parse(id)
	if err != nil {
		return ContactResponse{}, contacterrors.ErrInvalidContactID
	}

	c, err := s.repo.FindByID(ctx, contactID)
	if err != nil {
		return ContactResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*c), nil
}

func (s *service) Create(ctx context.Context, req ContactRequest) (ContactResponse, error) {
	c := &Contact{ID: uuid.New()}
	applyRequest(c, req)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, c); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionCreated, c)
	})
	if err != nil {
		s.logger.Error("create contact failed", zap.Error(err))
		return ContactResponse{}, err
	}

	s.logger.Info("create contact success", zap.String("contact_id", c.ID.String()))
	return ToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req ContactRequest) (ContactResponse, error) {
	contactID, err := uuid.Parse(id)
	if err != nil {
		return ContactResponse{}, contacterrors.ErrInvalidContactID
	}

	var updated *Contact
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		c, err := qtx.FindByID(ctx, contactID)
		if err != nil {
			return mapRepositoryError(err)
		}
		applyRequest(c, req)
		if err := qtx.Update(ctx, c); err != nil {
			return mapRepositoryError(err)
		}
		updated = c
		return s.recordChange(ctx, tx, events.ActionUpdated, c)
	})
	if err != nil {
		s.logger.Warn("update contact failed", zap.String("contact_id", id), zap.Error(err))
		return ContactResponse{}, err
	}

	s.logger.Info("update contact success", zap.String("contact_id", id))
	return ToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	contactID, err := uuid.Parse(id)
	if err != nil {
		return contacterrors.ErrInvalidContactID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(ctx, contactID); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionDeleted, &Contact{ID: contactID})
	})
	if err != nil {
		s.logger.Warn("delete contact failed", zap.String("contact_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete contact success", zap.String("contact_id", id))
	return nil
}

func (s *service) recordChange(ctx context.Context, tx *gorm.DB, action string, c *Contact) error {
	if s.outbox == nil {
		return nil
	}
	var data any
	if action != events.ActionDeleted {
		data = ToResponse(*c)
	}
	return kafka.EnqueueResourceChange(ctx, s.outbox.WithTx(tx), resourceName, action, c.ID.String(), data)
}
