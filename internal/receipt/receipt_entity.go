package receipt

import (
	"time"

	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/payroll"

	"github.com/google/uuid"
)

type PayReceipt struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PayrollID    uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;index"`
	GeneratedAt  time.Time `gorm:"autoCreateTime"`
	PDFReference *string   `gorm:"column:pdf_reference;type:varchar(255)"`

	Payroll  *payroll.Payroll   `gorm:"foreignKey:PayrollID;constraint:OnDelete:CASCADE"`
	Employee *employee.Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

func (PayReceipt) TableName() string {
	return "pay_receipts"
}
