package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOperator, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     *string   `gorm:"type:varchar(64)"`
	Email        string    `gorm:"type:varchar(72);not null;uniqueIndex:uq_users_email"`
	PasswordHash *string   `gorm:"type:varchar(72)"`
	Role         Role      `gorm:"type:varchar(16);not null;index"`
	Active       bool      `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}
