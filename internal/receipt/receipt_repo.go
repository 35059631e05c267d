package receipt

import (
	"context"

	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/payroll"
	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=receipt_repo.go -destination=mock/receipt_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, pr *PayReceipt) error
	FindAll(ctx context.Context, q listquery.Query) ([]PayReceipt, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*PayReceipt, error)
	Update(ctx context.Context, pr *PayReceipt) error
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

func (r *repository) Create(ctx context.Context, pr *PayReceipt) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(pr).Error
}

func (r *repository) FindAll(ctx context.Context, q listquery.Query) ([]PayReceipt, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&PayReceipt{}).Scopes(q.Where()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var receipts []PayReceipt
	err := r.db.WithContext(ctx).
		Scopes(payroll.Preload("Payroll"), employee.Preload("Employee"), q.Where(), q.Order(), q.Paginate()).
		Find(&receipts).Error
	return receipts, total, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*PayReceipt, error) {
	var pr PayReceipt
	err := r.db.WithContext(ctx).
		Scopes(payroll.Preload("Payroll"), employee.Preload("Employee")).
		First(&pr, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *repository) Update(ctx context.Context, pr *PayReceipt) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(pr).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&PayReceipt{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
