package auditlog

import (
	"context"
	"encoding/json"

	auditlogerrors "github.com/miguelF21/Facepay/internal/auditlog/errors"
	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/shared/contextutil"
	"github.com/miguelF21/Facepay/internal/shared/listquery"
	"github.com/miguelF21/Facepay/internal/shared/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ListDefinition = listquery.Definition{
	Filters: []listquery.Field{
		{Name: "user_id", Column: "user_id", Kind: listquery.UUID},
	},
	Search: []string{"action"},
	Ordering: []listquery.Field{
		{Name: "timestamp", Column: "timestamp"},
	},
	DefaultOrder: "id",
}

//go:generate mockgen -source=auditlog_service.go -destination=mock/auditlog_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q listquery.Query) ([]AuditLogResponse, int64, error)
	GetByID(ctx context.Context, id string) (AuditLogResponse, error)
	Create(ctx context.Context, req AuditLogRequest) (AuditLogResponse, error)
	Update(ctx context.Context, id string, req AuditLogRequest) (AuditLogResponse, error)
	Delete(ctx context.Context, id string) error
	RecordChange(ctx context.Context, event events.ResourceChangedEvent) error
}

// Audit logs are the sink of the change feed, so writes here never enqueue
// change events of their own.
type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auditlog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auditlog.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, q listquery.Query) ([]AuditLogResponse, int64, error) {
	logs, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all audit logs failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(logs), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AuditLogResponse, error) {
	logID, err := uuid.Parse(id)
	if err != nil {
		return AuditLogResponse{}, auditlogerrors.ErrInvalidAuditLogID
	}

	l, err := s.repo.FindByID(ctx, logID)
	if err != nil {
		s.logger.Warn("get audit log by id failed", zap.String("audit_log_id", id), zap.Error(err))
		return AuditLogResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*l), nil
}

func (s *service) Create(ctx context.Context, req AuditLogRequest) (AuditLogResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create audit log requested", zap.String("request_id", rid))

	l := &AuditLog{ID: uuid.New()}
	applyRequest(l, req)

	var created *AuditLog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, l); err != nil {
			return mapRepositoryError(err)
		}
		fresh, err := qtx.FindByID(ctx, l.ID)
		if err != nil {
			return mapRepositoryError(err)
		}
		created = fresh
		return nil
	})
	if err != nil {
		s.logger.Error("create audit log failed", zap.String("request_id", rid), zap.Error(err))
		return AuditLogResponse{}, err
	}

	s.logger.Info("create audit log success",
		zap.String("request_id", rid),
		zap.String("audit_log_id", created.ID.String()),
	)
	return ToResponse(*created), nil
}

func (s *service) Update(ctx context.Context, id string, req AuditLogRequest) (AuditLogResponse, error) {
	logID, err := uuid.Parse(id)
	if err != nil {
		return AuditLogResponse{}, auditlogerrors.ErrInvalidAuditLogID
	}

	var updated *AuditLog
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		l, err := qtx.FindByID(ctx, logID)
		if err != nil {
			return mapRepositoryError(err)
		}
		applyRequest(l, req)
		if err := qtx.Update(ctx, l); err != nil {
			return mapRepositoryError(err)
		}
		fresh, err := qtx.FindByID(ctx, logID)
		if err != nil {
			return mapRepositoryError(err)
		}
		updated = fresh
		return nil
	})
	if err != nil {
		s.logger.Warn("update audit log failed", zap.String("audit_log_id", id), zap.Error(err))
		return AuditLogResponse{}, err
	}

	s.logger.Info("update audit log success", zap.String("audit_log_id", id))
	return ToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	logID, err := uuid.Parse(id)
	if err != nil {
		return auditlogerrors.ErrInvalidAuditLogID
	}

	if err := s.repo.Delete(ctx, logID); err != nil {
		s.logger.Warn("delete audit log failed", zap.String("audit_log_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete audit log success", zap.String("audit_log_id", id))
	return nil
}

// RecordChange appends one audit row for a published resource change. The
// user is resolved from the actor email when such a user exists.
func (s *service) RecordChange(ctx context.Context, event events.ResourceChangedEvent) error {
	details, err := json.Marshal(event)
	if err != nil {
		return err
	}

	action := event.EventType
	l := &AuditLog{ID: uuid.New(), Action: &action, Details: types.JSON(details)}
	if event.ActorEmail != "" {
		userID, err := s.repo.FindUserIDByEmail(ctx, event.ActorEmail)
		if err != nil {
			return err
		}
		l.UserID = userID
	}

	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("record change failed",
			zap.String("event_type", event.EventType),
			zap.String("resource_id", event.ResourceID),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}
	return nil
}
