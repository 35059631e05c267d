package biometric

import (
	"context"

	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=biometric_repo.go -destination=mock/biometric_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, b *BiometricData) error
	FindAll(ctx context.Context, q listquery.Query) ([]BiometricData, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BiometricData, error)
	Update(ctx context.Context, b *BiometricData) error
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

func (r *repository) Create(ctx context.Context, b *BiometricData) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
}

func (r *repository) FindAll(ctx context.Context, q listquery.Query) ([]BiometricData, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&BiometricData{}).Scopes(q.Where()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []BiometricData
	err := r.db.WithContext(ctx).
		Scopes(employee.Preload("Employee"), preloadTerminal, q.Where(), q.Order(), q.Paginate()).
		Find(&records).Error
	return records, total, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*BiometricData, error) {
	var b BiometricData
	err := r.db.WithContext(ctx).
		Scopes(employee.Preload("Employee"), preloadTerminal).
		First(&b, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) Update(ctx context.Context, b *BiometricData) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&BiometricData{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
