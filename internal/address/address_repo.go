package address

import (
	"context"

	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=address_repo.go -destination=mock/address_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Address) error
	FindAll(ctx context.Context, q listquery.Query) ([]Address, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Address, error)
	Update(ctx context.Context, a *Address) error
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

func (r *repository) Create(ctx context.Context, a *Address) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAll(ctx context.Context, q listquery.Query) ([]Address, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Address{}).Scopes(q.Where()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var addresses []Address
	err := r.db.WithContext(ctx).
		Scopes(q.Where(), q.Order(), q.Paginate()).
		Find(&addresses).Error
	return addresses, total, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Address, error) {
	var a Address
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Update(ctx context.Context, a *Address) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Address{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
