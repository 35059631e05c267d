package recognition

import (
	"context"

	"github.com/miguelF21/Facepay/internal/accessattempt"
	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=recognition_repo.go -destination=mock/recognition_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, result *RecognitionResult) error
	FindAll(ctx context.Context, q listquery.Query) ([]RecognitionResult, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RecognitionResult, error)
	Update(ctx context.Context, result *RecognitionResult) error
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

func (r *repository) Create(ctx context.Context, result *RecognitionResult) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(result).Error
}

func (r *repository) FindAll(ctx context.Context, q listquery.Query) ([]RecognitionResult, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&RecognitionResult{}).Scopes(q.Where()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []RecognitionResult
	err := r.db.WithContext(ctx).
		Scopes(employee.Preload("Employee"), accessattempt.Preload("Attempt"), q.Where(), q.Order(), q.Paginate()).
		Find(&results).Error
	return results, total, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*RecognitionResult, error) {
	var result RecognitionResult
	err := r.db.WithContext(ctx).
		Scopes(employee.Preload("Employee"), accessattempt.Preload("Attempt")).
		First(&result, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repository) Update(ctx context.Context, result *RecognitionResult) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(result).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&RecognitionResult{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
