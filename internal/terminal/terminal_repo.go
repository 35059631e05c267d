package terminal

import (
	"context"

	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=terminal_repo.go -destination=mock/terminal_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, t *Terminal) error
	FindAll(ctx context.Context, q listquery.Query) ([]Terminal, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Terminal, error)
	Update(ctx context.Context, t *Terminal) error
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

func (r *repository) Create(ctx context.Context, t *Terminal) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context, q listquery.Query) ([]Terminal, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Terminal{}).Scopes(q.Where()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var terminals []Terminal
	err := r.db.WithContext(ctx).
		Scopes(q.Where(), q.Order(), q.Paginate()).
		Find(&terminals).Error
	return terminals, total, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Terminal, error) {
	var t Terminal
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Update(ctx context.Context, t *Terminal) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Terminal{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
