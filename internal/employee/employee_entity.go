package employee

import (
	"github.com/miguelF21/Facepay/internal/address"
	"github.com/miguelF21/Facepay/internal/contact"
	"github.com/miguelF21/Facepay/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID         *uuid.UUID `gorm:"type:uuid;index"`
	FirstName      *string    `gorm:"type:varchar(40)"`
	LastName       *string    `gorm:"type:varchar(40)"`
	DocumentType   *string    `gorm:"type:varchar(64)"`
	DocumentNumber *int64
	Position       *string    `gorm:"type:varchar(64)"`
	Department     *string    `gorm:"type:varchar(64)"`
	EmployeeCode   *string    `gorm:"type:varchar(16);uniqueIndex:uq_employees_employee_code"`
	ContactID      *uuid.UUID `gorm:"type:uuid"`
	AddressID      *uuid.UUID `gorm:"type:uuid"`

	User    *user.User       `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Contact *contact.Contact `gorm:"foreignKey:ContactID;constraint:OnDelete:SET NULL"`
	Address *address.Address `gorm:"foreignKey:AddressID;constraint:OnDelete:SET NULL"`
}

func (Employee) TableName() string {
	return "employees"
}

// Preload loads an employee relation together with the records the
// employee itself expands. Pass "" for the employee table itself or the
// association name ("Employee") from a parent resource.
func Preload(relation string) func(*gorm.DB) *gorm.DB {
	prefix := ""
	if relation != "" {
		prefix = relation + "."
	}
	return func(db *gorm.DB) *gorm.DB {
		if relation != "" {
			db = db.Preload(relation)
		}
		return db.
			Preload(prefix + "User").
			Preload(prefix + "Contact").
			Preload(prefix + "Address")
	}
}
