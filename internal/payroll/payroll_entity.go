package payroll

import (
	"github.com/miguelF21/Facepay/internal/concept"
	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/shared/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payroll is a pay period for one employee. Amounts are stored as given;
// net salary is not derived from gross and deductions.
type Payroll struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	PeriodStart *types.Date      `gorm:"index"`
	PeriodEnd   *types.Date      `gorm:"index"`
	GrossSalary *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Deductions  *decimal.Decimal `gorm:"type:numeric(12,2)"`
	NetSalary   *decimal.Decimal `gorm:"type:numeric(12,2)"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Concepts []concept.Concept  `gorm:"foreignKey:PayrollID;constraint:OnDelete:CASCADE"`
}

func (Payroll) TableName() string {
	return "payroll_records"
}

// Preload loads the payroll found at relation with its employee and
// concepts. An empty relation preloads the fields of Payroll itself.
func Preload(relation string) func(*gorm.DB) *gorm.DB {
	prefix := ""
	if relation != "" {
		prefix = relation + "."
	}
	return func(db *gorm.DB) *gorm.DB {
		if relation != "" {
			db = db.Preload(relation)
		}
		db = db.Preload(prefix+"Concepts", func(db *gorm.DB) *gorm.DB {
			return db.Order("code")
		})
		return employee.Preload(prefix + "Employee")(db)
	}
}
