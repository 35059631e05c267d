package contact

import (
	"context"

	"github.com/miguelF21/Facepay/internal/shared/listquery"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=contact_repo.go -destination=mock/contact_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, c *Contact) error
	FindAll(ctx context.Context, q listquery.Query) ([]Contact, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Contact, error)
	Update(ctx context.Context, c *Contact) error
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

func (r *repository) Create(ctx context.Context, c *Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context, q listquery.Query) ([]Contact, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Contact{}).Scopes(q.Where()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []Contact
	err := r.db.WithContext(ctx).
		Scopes(q.Where(), q.Order(), q.Paginate()).
		Find(&contacts).Error
	return contacts, total, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Contact, error) {
	var c Contact
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Contact) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Contact{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
