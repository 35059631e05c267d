package terminal

import "github.com/google/uuid"

const DefaultStatus = "active"

type Terminal struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Location        *string   `gorm:"type:varchar(64);index"`
	IPAddress       *string   `gorm:"type:varchar(64)"`
	FirmwareVersion *string   `gorm:"type:varchar(32)"`
	Status          string    `gorm:"type:varchar(32);not null;index"`
}

func (Terminal) TableName() string {
	return "terminals"
}
