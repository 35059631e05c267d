package address

import "github.com/google/uuid"

type Address struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Street     *string   `gorm:"type:varchar(72)"`
	City       *string   `gorm:"type:varchar(32)"`
	State      *string   `gorm:"type:varchar(32)"`
	PostalCode *string   `gorm:"type:varchar(16)"`
}

func (Address) TableName() string {
	return "addresses"
}
