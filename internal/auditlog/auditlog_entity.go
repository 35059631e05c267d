package auditlog

import (
	"time"

	"github.com/miguelF21/Facepay/internal/shared/types"
	"github.com/miguelF21/Facepay/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Action    *string    `gorm:"type:varchar(150);index"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Timestamp time.Time  `gorm:"autoCreateTime;index"`
	Details   types.JSON

	User *user.User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

func preloadUser(db *gorm.DB) *gorm.DB {
	return db.Preload("User")
}
