package accessattempt

import (
	"context"

	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=accessattempt_repo.go -destination=mock/accessattempt_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *AccessAttempt) error
	FindAll(ctx context.Context, q listquery.Query) ([]AccessAttempt, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AccessAttempt, error)
	Update(ctx context.Context, a *AccessAttempt) error
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

func (r *repository) Create(ctx context.Context, a *AccessAttempt) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
}

func (r *repository) FindAll(ctx context.Context, q listquery.Query) ([]AccessAttempt, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&AccessAttempt{}).Scopes(q.Where()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var attempts []AccessAttempt
	err := r.db.WithContext(ctx).
		Scopes(Preload(""), q.Where(), q.Order(), q.Paginate()).
		Find(&attempts).Error
	return attempts, total, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*AccessAttempt, error) {
	var a AccessAttempt
	err := r.db.WithContext(ctx).
		Scopes(Preload("")).
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Update(ctx context.Context, a *AccessAttempt) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&AccessAttempt{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
