package accessattempt

import (
	"time"

	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/terminal"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccessAttempt struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TerminalID *uuid.UUID `gorm:"type:uuid;index"`
	Timestamp  time.Time  `gorm:"autoCreateTime"`
	Method     *string    `gorm:"type:varchar(16)"`
	Result     *string    `gorm:"type:varchar(16)"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;index"`

	Terminal *terminal.Terminal `gorm:"foreignKey:TerminalID;constraint:OnDelete:SET NULL"`
	Employee *employee.Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL"`
}

func (AccessAttempt) TableName() string {
	return "access_attempts"
}

// Preload loads the attempt's terminal and employee. Pass "" for the
// attempts table itself or the association name from a parent resource.
func Preload(relation string) func(*gorm.DB) *gorm.DB {
	prefix := ""
	if relation != "" {
		prefix = relation + "."
	}
	return func(db *gorm.DB) *gorm.DB {
		if relation != "" {
			db = db.Preload(relation)
		}
		db = db.Preload(prefix + "Terminal")
		return employee.Preload(prefix + "Employee")(db)
	}
}
