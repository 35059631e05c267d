package employee

import (
	"github.com/miguelF21/Facepay/internal/address"
	"github.com/miguelF21/Facepay/internal/contact"
	"github.com/miguelF21/Facepay/internal/shared/types"
	"github.com/miguelF21/Facepay/internal/user"
)

// EmployeeRequest serves create, full and partial update. Every field is
// optional; an explicit null clears it.
type EmployeeRequest struct {
	UserID         types.NullableUUID     `json:"user_id"`
	FirstName      types.Nullable[string] `json:"first_name" binding:"omitempty,max=40"`
	LastName       types.Nullable[string] `json:"last_name" binding:"omitempty,max=40"`
	DocumentType   types.Nullable[string] `json:"document_type" binding:"omitempty,max=64"`
	DocumentNumber types.Nullable[int64]  `json:"document_number"`
	Position       types.Nullable[string] `json:"position" binding:"omitempty,max=64"`
	Department     types.Nullable[string] `json:"department" binding:"omitempty,max=64"`
	EmployeeCode   types.Nullable[string] `json:"employee_code" binding:"omitempty,max=16"`
	ContactID      types.NullableUUID     `json:"contact_id"`
	AddressID      types.NullableUUID     `json:"address_id"`
}

type EmployeeResponse struct {
	ID             string                   `json:"id"`
	UserID         *string                  `json:"user_id"`
	FirstName      *string                  `json:"first_name"`
	LastName       *string                  `json:"last_name"`
	DocumentType   *string                  `json:"document_type"`
	DocumentNumber *int64                   `json:"document_number"`
	Position       *string                  `json:"position"`
	Department     *string                  `json:"department"`
	EmployeeCode   *string                  `json:"employee_code"`
	ContactID      *string                  `json:"contact_id"`
	AddressID      *string                  `json:"address_id"`
	User           *user.UserResponse       `json:"user"`
	Contact        *contact.ContactResponse `json:"contact"`
	Address        *address.AddressResponse `json:"address"`
}

// ToResponse expands whichever relations were preloaded.
func ToResponse(e Employee) EmployeeResponse {
	res := EmployeeResponse{
		ID:             e.ID.String(),
		UserID:         types.UUIDString(e.UserID),
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		DocumentType:   e.DocumentType,
		DocumentNumber: e.DocumentNumber,
		Position:       e.Position,
		Department:     e.Department,
		EmployeeCode:   e.EmployeeCode,
		ContactID:      types.UUIDString(e.ContactID),
		AddressID:      types.UUIDString(e.AddressID),
	}
	if e.User != nil {
		u := user.ToResponse(*e.User)
		res.User = &u
	}
	if e.Contact != nil {
		c := contact.ToResponse(*e.Contact)
		res.Contact = &c
	}
	if e.Address != nil {
		a := address.ToResponse(*e.Address)
		res.Address = &a
	}
	return res
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = ToResponse(e)
	}
	return res
}

func applyRequest(e *Employee, req EmployeeRequest) {
	req.UserID.Apply(&e.UserID)
	req.FirstName.Apply(&e.FirstName)
	req.LastName.Apply(&e.LastName)
	req.DocumentType.Apply(&e.DocumentType)
	req.DocumentNumber.Apply(&e.DocumentNumber)
	req.Position.Apply(&e.Position)
	req.Department.Apply(&e.Department)
	req.EmployeeCode.Apply(&e.EmployeeCode)
	req.ContactID.Apply(&e.ContactID)
	req.AddressID.Apply(&e.AddressID)
}
