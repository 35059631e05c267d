package sysconfig

import (
	"github.com/miguelF21/Facepay/internal/shared/types"

	"github.com/google/uuid"
)

// SystemConfig holds free-form settings as a JSON object.
type SystemConfig struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Settings types.JSON `gorm:"not null"`
}

func (SystemConfig) TableName() string {
	return "system_config"
}
