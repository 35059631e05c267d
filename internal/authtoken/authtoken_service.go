package authtoken

import (
	"context"

	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	"github.com/miguelF21/Facepay/internal/shared/contextutil"
	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const resourceName = "auth_token"

var ListDefinition = listquery.Definition{
	Filters: []listquery.Field{
		{Name: "user_id", Column: "user_id", Kind: listquery.UUID},
	},
	Ordering: []listquery.Field{
		{Name: "expires_at", Column: "expires_at"},
	},
	DefaultOrder: "token",
}

//go:generate mockgen -source=authtoken_service.go -destination=mock/authtoken_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q listquery.Query) ([]AuthTokenResponse, int64, error)
	GetByID(ctx context.Context, id string) (AuthTokenResponse, error)
	Create(ctx context.Context, req AuthTokenRequest) (AuthTokenResponse, error)
	Update(ctx context.Context, id string, req AuthTokenRequest) (AuthTokenResponse, error)
	Patch(ctx context.Context, id string, req AuthTokenPatchRequest) (AuthTokenResponse, error)
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
	l := zap.L().Named("authtoken.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("authtoken.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) GetAll(ctx context.Context, q listquery.Query) ([]AuthTokenResponse, int64, error) {
	tokens, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all auth tokens failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(tokens), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AuthTokenResponse, error) {
	at, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get auth token by id failed", zap.String("token", redact(id)), zap.Error(err))
		return AuthTokenResponse{}, mapRepositoryError(err)
	}
	return ToResponse(*at), nil
}

func (s *service) Create(ctx context.Context, req AuthTokenRequest) (AuthTokenResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create auth token requested", zap.String("request_id", rid))

	at := &AuthToken{Token: req.Token}
	applyPatch(at, req.toPatch())

	var created *AuthToken
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, at); err != nil {
			return mapRepositoryError(err)
		}
		fresh, err := qtx.FindByID(ctx, at.Token)
		if err != nil {
			return mapRepositoryError(err)
		}
		created = fresh
		return s.recordChange(ctx, tx, events.ActionCreated, fresh)
	})
	if err != nil {
		s.logger.Error("create auth token failed", zap.String("request_id", rid), zap.Error(err))
		return AuthTokenResponse{}, err
	}

	s.logger.Info("create auth token success",
		zap.String("request_id", rid),
		zap.String("token", redact(created.Token)),
	)
	return ToResponse(*created), nil
}

func (s *service) Update(ctx context.Context, id string, req AuthTokenRequest) (AuthTokenResponse, error) {
	return s.Patch(ctx, id, req.toPatch())
}

func (s *service) Patch(ctx context.Context, id string, req AuthTokenPatchRequest) (AuthTokenResponse, error) {
	var updated *AuthToken
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		at, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		applyPatch(at, req)
		if err := qtx.Update(ctx, at); err != nil {
			return mapRepositoryError(err)
		}
		fresh, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		updated = fresh
		return s.recordChange(ctx, tx, events.ActionUpdated, fresh)
	})
	if err != nil {
		s.logger.Warn("update auth token failed", zap.String("token", redact(id)), zap.Error(err))
		return AuthTokenResponse{}, err
	}

	s.logger.Info("update auth token success", zap.String("token", redact(id)))
	return ToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionDeleted, &AuthToken{Token: id})
	})
	if err != nil {
		s.logger.Warn("delete auth token failed", zap.String("token", redact(id)), zap.Error(err))
		return err
	}

	s.logger.Info("delete auth token success", zap.String("token", redact(id)))
	return nil
}

func (s *service) recordChange(ctx context.Context, tx *gorm.DB, action string, at *AuthToken) error {
	if s.outbox == nil {
		return nil
	}
	var data any
	if action != events.ActionDeleted {
		data = ToResponse(*at)
	}
	return kafka.EnqueueResourceChange(ctx, s.outbox.WithTx(tx), resourceName, action, at.Token, data)
}

// redact keeps enough of a token to correlate log lines.
func redact(token string) string {
	if len(token) <= 6 {
		return "***"
	}
	return token[:6] + "***"
}
