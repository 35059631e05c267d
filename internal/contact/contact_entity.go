package contact

import "github.com/google/uuid"

type Contact struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Phone *string   `gorm:"type:varchar(16)"`
	Email *string   `gorm:"type:varchar(40)"`
}

func (Contact) TableName() string {
	return "contacts"
}
