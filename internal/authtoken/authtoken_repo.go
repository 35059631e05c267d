package authtoken

import (
	"context"

	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=authtoken_repo.go -destination=mock/authtoken_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, at *AuthToken) error
	FindAll(ctx context.Context, q listquery.Query) ([]AuthToken, int64, error)
	FindByID(ctx context.Context, id string) (*AuthToken, error)
	Update(ctx context.Context, at *AuthToken) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, at *AuthToken) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(at).Error
}

func (r *repository) FindAll(ctx context.Context, q listquery.Query) ([]AuthToken, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&AuthToken{}).Scopes(q.Where()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tokens []AuthToken
	err := r.db.WithContext(ctx).
		Scopes(preloadUser, q.Where(), q.Order(), q.Paginate()).
		Find(&tokens).Error
	return tokens, total, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*AuthToken, error) {
	var at AuthToken
	err := r.db.WithContext(ctx).
		Scopes(preloadUser).
		First(&at, "token = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &at, nil
}

func (r *repository) Update(ctx context.Context, at *AuthToken) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(at).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&AuthToken{}, "token = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
