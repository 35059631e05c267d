package concept

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Concept is a payroll line item identified by its code.
type Concept struct {
	Code        string           `gorm:"type:varchar(24);primaryKey"`
	Description *string          `gorm:"type:varchar(120)"`
	Amount      *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PayrollID   uuid.UUID        `gorm:"type:uuid;not null;index"`
}

func (Concept) TableName() string {
	return "concepts"
}
