package report

import (
	"context"

	"github.com/miguelF21/Facepay/internal/shared/listquery"
	"github.com/miguelF21/Facepay/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, rep *Report) error
	FindAll(ctx context.Context, q listquery.Query) ([]Report, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Report, error)
	Update(ctx context.Context, rep *Report) error
	Delete(ctx context.Context, id uuid.UUID) error
	UserRole(ctx context.Context, userID uuid.UUID) (user.Role, error)
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

func (r *repository) Create(ctx context.Context, rep *Report) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(rep).Error
}

func (r *repository) FindAll(ctx context.Context, q listquery.Query) ([]Report, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Report{}).Scopes(q.Where()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []Report
	err := r.db.WithContext(ctx).
		Scopes(preloadAdmin, q.Where(), q.Order(), q.Paginate()).
		Find(&reports).Error
	return reports, total, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Report, error) {
	var rep Report
	err := r.db.WithContext(ctx).
		Scopes(preloadAdmin).
		First(&rep, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *repository) Update(ctx context.Context, rep *Report) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(rep).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Report{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UserRole returns the role of the referenced user.
func (r *repository) UserRole(ctx context.Context, userID uuid.UUID) (user.Role, error) {
	var u user.User
	if err := r.db.WithContext(ctx).Select("id", "role").First(&u, "id = ?", userID).Error; err != nil {
		return "", err
	}
	return u.Role, nil
}
