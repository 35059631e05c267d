package auth

import (
	"context"
	"errors"

	"github.com/miguelF21/Facepay/internal/auth/jwks"
	"github.com/miguelF21/Facepay/internal/shared/contextutil"
	"github.com/miguelF21/Facepay/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Me(ctx context.Context, identity *jwks.Identity) (MeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Me(ctx context.Context, identity *jwks.Identity) (MeResponse, error) {
	res := MeResponse{
		Subject: identity.Subject,
		Email:   identity.Email,
		Claims:  map[string]any(identity.Claims),
	}
	if identity.Email == "" {
		return res, nil
	}

	u, err := s.repo.FindUserByEmail(ctx, identity.Email)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		s.logger.Debug("no local user for identity",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("sub", identity.Subject),
		)
	case err != nil:
		s.logger.Error("find user by email failed", zap.String("sub", identity.Subject), zap.Error(err))
		return MeResponse{}, err
	default:
		ur := user.ToResponse(*u)
		res.User = &ur
	}
	return res, nil
}
