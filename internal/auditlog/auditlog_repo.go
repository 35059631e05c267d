package auditlog

import (
	"context"

	"github.com/miguelF21/Facepay/internal/shared/listquery"
	"github.com/miguelF21/Facepay/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=auditlog_repo.go -destination=mock/auditlog_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, l *AuditLog) error
	FindAll(ctx context.Context, q listquery.Query) ([]AuditLog, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AuditLog, error)
	Update(ctx context.Context, l *AuditLog) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindUserIDByEmail(ctx context.Context, email string) (*uuid.UUID, error)
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

func (r *repository) Create(ctx context.Context, l *AuditLog) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error
}

func (r *repository) FindAll(ctx context.Context, q listquery.Query) ([]AuditLog, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&AuditLog{}).Scopes(q.Where()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []AuditLog
	err := r.db.WithContext(ctx).
		Scopes(preloadUser, q.Where(), q.Order(), q.Paginate()).
		Find(&logs).Error
	return logs, total, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*AuditLog, error) {
	var l AuditLog
	err := r.db.WithContext(ctx).
		Scopes(preloadUser).
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) Update(ctx context.Context, l *AuditLog) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(l).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&AuditLog{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindUserIDByEmail returns nil when no user has the email.
func (r *repository) FindUserIDByEmail(ctx context.Context, email string) (*uuid.UUID, error) {
	var users []user.User
	err := r.db.WithContext(ctx).
		Select("id").
		Where("LOWER(email) = LOWER(?)", email).
		Limit(1).
		Find(&users).Error
	if err != nil || len(users) == 0 {
		return nil, err
	}
	return &users[0].ID, nil
}
