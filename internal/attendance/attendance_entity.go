package attendance

import (
	"time"

	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/shared/types"

	"github.com/google/uuid"
)

// Attendance is one day of an employee's presence. Date is assigned when
// the record is created; check-in and check-out are stored as submitted.
type Attendance struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Date           types.Date `gorm:"not null;index"`
	CheckIn        *types.ClockTime
	CheckOut       *types.ClockTime
	OriginTerminal *string `gorm:"type:varchar(64)"`
	Status         bool    `gorm:"not null"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

func (Attendance) TableName() string {
	return "attendance_records"
}

func today() types.Date {
	return types.NewDate(time.Now().UTC())
}
