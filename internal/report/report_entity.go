package report

import (
	"time"

	"github.com/miguelF21/Facepay/internal/shared/types"
	"github.com/miguelF21/Facepay/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report is metadata about a generated report file. Rendering happens
// elsewhere; only the reference is kept.
type Report struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         *string   `gorm:"type:varchar(116)"`
	GeneratedAt   time.Time `gorm:"autoCreateTime"`
	Filters       types.JSON
	FileReference *string    `gorm:"type:varchar(64)"`
	AdminID       *uuid.UUID `gorm:"type:uuid;index"`

	Admin *user.User `gorm:"foreignKey:AdminID;constraint:OnDelete:SET NULL"`
}

func (Report) TableName() string {
	return "reports"
}

func preloadAdmin(db *gorm.DB) *gorm.DB {
	return db.Preload("Admin")
}
