package user

import (
	"context"

	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	"github.com/miguelF21/Facepay/internal/shared/contextutil"
	"github.com/miguelF21/Facepay/internal/shared/listquery"
	usererrors "github.com/miguelF21/Facepay/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resourceName = "user"

var ListDefinition = listquery.Definition{
	Filters: []listquery.Field{
		{Name: "role", Column: "role", Kind: listquery.String},
		{Name: "active", Column: "active", Kind: listquery.Bool},
	},
	Search: []string{"username", "email"},
	Ordering: []listquery.Field{
		{Name: "created_at", Column: "created_at"},
		{Name: "username", Column: "username"},
	},
	DefaultOrder: "id",
}

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q listquery.Query) ([]UserResponse, int64, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Create(ctx context.Context, req UserRequest) (UserResponse, error)
	Update(ctx context.Context, id string, req UserRequest) (UserResponse, error)
	Patch(ctx context.Context, id string, req UserPatchRequest) (UserResponse, error)
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

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context, q listquery.Query) ([]UserResponse, int64, error) {
	s.logger.Debug("get all users requested", zap.Int("page", q.Page))

	users, total, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all users failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	return mapToListResponse(users), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	s.logger.Debug("get user by id requested", zap.String("user_id", id))

	userID, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("get user by id failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	return ToResponse(*u), nil
}

func (s *service) Create(ctx context.Context, req UserRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create user requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	u := &User{
		ID:     uuid.New(),
		Role:   RoleEmployee,
		Active: true,
	}
	if err := applyPatch(u, req.toPatch()); err != nil {
		return UserResponse{}, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, u); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionCreated, u)
	})
	if err != nil {
		s.logger.Error("create user failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("create user success",
		zap.String("request_id", rid),
		zap.String("user_id", u.ID.String()),
	)
	return ToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, id string, req UserRequest) (UserResponse, error) {
	return s.Patch(ctx, id, req.toPatch())
}

func (s *service) Patch(ctx context.Context, id string, req UserPatchRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update user requested",
		zap.String("request_id", rid),
		zap.String("user_id", id),
	)

	userID, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	var updated *User
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		u, err := qtx.FindByID(ctx, userID)
		if err != nil {
			return mapRepositoryError(err)
		}
		if err := applyPatch(u, req); err != nil {
			return err
		}
		if err := qtx.Update(ctx, u); err != nil {
			return mapRepositoryError(err)
		}

		updated = u
		return s.recordChange(ctx, tx, events.ActionUpdated, u)
	})
	if err != nil {
		s.logger.Warn("update user failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("update user success", zap.String("user_id", id))
	return ToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete user requested", zap.String("user_id", id))

	userID, err := uuid.Parse(id)
	if err != nil {
		return usererrors.ErrInvalidUserID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Delete(ctx, userID); err != nil {
			return mapRepositoryError(err)
		}
		return s.recordChange(ctx, tx, events.ActionDeleted, &User{ID: userID})
	})
	if err != nil {
		s.logger.Warn("delete user failed", zap.String("user_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete user success", zap.String("user_id", id))
	return nil
}

func (s *service) recordChange(ctx context.Context, tx *gorm.DB, action string, u *User) error {
	if s.outbox == nil {
		return nil
	}

	var data any
	if action != events.ActionDeleted {
		data = ToResponse(*u)
	}
	if err := kafka.EnqueueResourceChange(ctx, s.outbox.WithTx(tx), resourceName, action, u.ID.String(), data); err != nil {
		s.logger.Error("user outbox persist failed",
			zap.String("user_id", u.ID.String()),
			zap.String("action", action),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func applyPatch(u *User, req UserPatchRequest) error {
	req.Username.Apply(&u.Username)
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return usererrors.ErrInvalidRole
		}
		u.Role = *req.Role
	}
	if req.Active != nil {
		u.Active = *req.Active
	}
	if req.Password.Valid {
		if req.Password.Value == nil {
			u.PasswordHash = nil
			return nil
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password.Value), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hash := string(hashed)
		u.PasswordHash = &hash
	}
	return nil
}
