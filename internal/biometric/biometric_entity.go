package biometric

import (
	"time"

	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/terminal"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BiometricData is an enrollment record. Vector is stored as submitted.
type BiometricData struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Type         *string    `gorm:"type:varchar(64);index"`
	Vector       *string    `gorm:"type:text"`
	RegisteredAt time.Time  `gorm:"autoCreateTime"`
	TerminalID   *uuid.UUID `gorm:"type:uuid;index"`
	EmployeeID   uuid.UUID  `gorm:"type:uuid;not null;index"`

	Terminal *terminal.Terminal `gorm:"foreignKey:TerminalID;constraint:OnDelete:SET NULL"`
	Employee *employee.Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

func (BiometricData) TableName() string {
	return "biometric_data"
}

func preloadTerminal(db *gorm.DB) *gorm.DB {
	return db.Preload("Terminal")
}
