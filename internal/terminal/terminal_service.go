package terminal

import (
	"context"

	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	"github.com/miguelF21/Facepay/internal/shared/contextutil"
	"github.com/miguelF21/Facepay/internal/shared/listquery"
	terminalerrors "github.com/miguelF21/Facepay/internal/terminal/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resourceName = "terminal"

var ListDefinition = listquery.Definition{
	Filters: []listquery.Field{
		{Name: "status", Column: "status"},
		{Name: "location", Column: "location"},
	},
	Search:       []string{"location", "ip_address"},
	DefaultOrder: "id",
}

//go:generate mockgen -source=terminal_service.go -destination=mock/terminal_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q listquery.Query) ([]TerminalResponse, int64, error)
	GetByID(ctx context.Context, id string) (TerminalResponse, error)
	Create(ctx context.Context, req TerminalRequest) (TerminalResponse, error)
	Update(ctx context.Context, id string, req TerminalRequest) (TerminalResponse, error)
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
	l := zap.L().Named("terminal.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("terminal.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) GetAll(ctx context.Context, q listquery.Query) ([]TerminalResponse, int64, error) {
	terminals, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all terminals failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(terminals), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (TerminalResponse, error) {
	terminalID, err := uuid.Parse(id)
	if err != nil {
		return TerminalResponse{}, terminalerrors.ErrInvalidTerminalID
	}

	t, err := s.repo.FindByID(ctx, terminalID)
	if err != nil {
		s.logger.Warn("get terminal by id failed", zap.String("terminal_id", id), zap.Error(err))
		return TerminalResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*t), nil
}

func (s *service) Create(ctx context.Context, req TerminalRequest) (TerminalResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create terminal requested", zap.String("request_id", rid))

	t := &Terminal{ID: uuid.New(), Status: DefaultStatus}
	applyRequest(t, req)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, t); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionCreated, t)
	})
	if err != nil {
		s.logger.Error("create terminal failed", zap.String("request_id", rid), zap.Error(err))
		return TerminalResponse{}, err
	}

	s.logger.Info("create terminal success",
		zap.String("request_id", rid),
		zap.String("terminal_id", t.ID.String()),
	)
	return ToResponse(*t), nil
}

func (s *service) Update(ctx context.Context, id string, req TerminalRequest) (TerminalResponse, error) {
	terminalID, err := uuid.Parse(id)
	if err != nil {
		return TerminalResponse{}, terminalerrors.ErrInvalidTerminalID
	}

	var updated *Terminal
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		t, err := qtx.FindByID(ctx, terminalID)
		if err != nil {
			return mapRepositoryError(err)
		}
		applyRequest(t, req)
		if err := qtx.Update(ctx, t); err != nil {
			return mapRepositoryError(err)
		}
		updated = t
		return s.recordChange(ctx, tx, events.ActionUpdated, t)
	})
	if err != nil {
		s.logger.Warn("update terminal failed", zap.String("terminal_id", id), zap.Error(err))
		return TerminalResponse{}, err
	}

	s.logger.Info("update terminal success", zap.String("terminal_id", id))
	return ToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	terminalID, err := uuid.Parse(id)
	if err != nil {
		return terminalerrors.ErrInvalidTerminalID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(ctx, terminalID); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionDeleted, &Terminal{ID: terminalID})
	})
	if err != nil {
		s.logger.Warn("delete terminal failed", zap.String("terminal_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete terminal success", zap.String("terminal_id", id))
	return nil
}

func (s *service) recordChange(ctx context.Context, tx *gorm.DB, action string, t *Terminal) error {
	if s.outbox == nil {
		return nil
	}
	var data any
	if action != events.ActionDeleted {
		data = ToResponse(*t)
	}
	return kafka.EnqueueResourceChange(ctx, s.outbox.WithTx(tx), resourceName, action, t.ID.String(), data)
}
