package sysconfig

import (
	"context"

	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=sysconfig_repo.go -destination=mock/sysconfig_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, cfg *SystemConfig) error
	FindAll(ctx context.Context, q listquery.Query) ([]SystemConfig, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SystemConfig, error)
	Update(ctx context.Context, cfg *SystemConfig) error
	Delete(ctx context.Context, id uuid.UUID) error
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

func (r *repository) Create(ctx context.Context, cfg *SystemConfig) error {
	return r.db.WithContext(ctx).Create(cfg).Error
}

func (r *repository) FindAll(ctx context.Context, q listquery.Query) ([]SystemConfig, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&SystemConfig{}).Scopes(q.Where()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var configs []SystemConfig
	err := r.db.WithContext(ctx).
		Scopes(q.Where(), q.Order(), q.Paginate()).
		Find(&configs).Error
	return configs, total, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*SystemConfig, error) {
	var cfg SystemConfig
	if err := r.db.WithContext(ctx).First(&cfg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *repository) Update(ctx context.Context, cfg *SystemConfig) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&SystemConfig{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
