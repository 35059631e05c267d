package concept

import (
	"context"

	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"gorm.io/gorm"
)

//go:generate mockgen -source=concept_repo.go -destination=mock/concept_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, c *Concept) error
	FindAll(ctx context.Context, q listquery.Query) ([]Concept, int64, error)
	FindByID(ctx context.Context, id string) (*Concept, error)
	Update(ctx context.Context, c *Concept) error
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

func (r *repository) Create(ctx context.Context, c *Concept) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context, q listquery.Query) ([]Concept, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Concept{}).Scopes(q.Where()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var concepts []Concept
	err := r.db.WithContext(ctx).
		Scopes(q.Where(), q.Order(), q.Paginate()).
		Find(&concepts).Error
	return concepts, total, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Concept, error) {
	var c Concept
	if err := r.db.WithContext(ctx).First(&c, "code = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Concept) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Concept{}, "code = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
