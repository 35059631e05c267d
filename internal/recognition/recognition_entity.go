package recognition

import (
	"time"

	"github.com/miguelF21/Facepay/internal/accessattempt"
	"github.com/miguelF21/Facepay/internal/employee"

	"github.com/google/uuid"
)

// RecognitionResult is written by the external matcher. Confidence is kept
// as reported, no range is enforced.
type RecognitionResult struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Match      *bool      `gorm:"index"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;index"`
	Confidence *float64
	Timestamp  time.Time `gorm:"autoCreateTime"`
	AttemptID  uuid.UUID `gorm:"type:uuid;not null;index"`

	Employee *employee.Employee           `gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL"`
	Attempt  *accessattempt.AccessAttempt `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE"`
}

func (RecognitionResult) TableName() string {
	return "recognition_results"
}
