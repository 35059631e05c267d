package authtoken

import (
	"time"

	"github.com/miguelF21/Facepay/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthToken is an opaque token issued to a user, keyed by its value.
type AuthToken struct {
	Token     string    `gorm:"type:varchar(255);primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt *time.Time

	User *user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (AuthToken) TableName() string {
	return "auth_tokens"
}

func preloadUser(db *gorm.DB) *gorm.DB {
	return db.Preload("User")
}
