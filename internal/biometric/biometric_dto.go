package biometric

import (
	"time"

	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/shared/types"
	"github.com/miguelF21/Facepay/internal/terminal"

	"github.com/google/uuid"
)

type BiometricDataRequest struct {
	Type       types.Nullable[string] `json:"type" binding:"omitempty,max=64"`
	Vector     types.Nullable[string] `json:"vector"`
	TerminalID types.NullableUUID     `json:"terminal_id"`
	EmployeeID uuid.UUID              `json:"employee_id" binding:"required"`
}

type BiometricDataPatchRequest struct {
	Type       types.Nullable[string] `json:"type" binding:"omitempty,max=64"`
	Vector     types.Nullable[string] `json:"vector"`
	TerminalID types.NullableUUID     `json:"terminal_id"`
	EmployeeID *uuid.UUID             `json:"employee_id"`
}

func (r BiometricDataRequest) toPatch() BiometricDataPatchRequest {
	employeeID := r.EmployeeID
	return BiometricDataPatchRequest{
		Type:       r.Type,
		Vector:     r.Vector,
		TerminalID: r.TerminalID,
		EmployeeID: &employeeID,
	}
}

type BiometricDataResponse struct {
	ID           string                     `json:"id"`
	Type         *string                    `json:"type"`
	Vector       *string                    `json:"vector"`
	RegisteredAt time.Time                  `json:"registered_at"`
	TerminalID   *string                    `json:"terminal_id"`
	EmployeeID   string                     `json:"employee_id"`
	Terminal     *terminal.TerminalResponse `json:"terminal"`
	Employee     *employee.EmployeeResponse `json:"employee"`
}

func ToResponse(b BiometricData) BiometricDataResponse {
	res := BiometricDataResponse{
		ID:           b.ID.String(),
		Type:         b.Type,
		Vector:       b.Vector,
		RegisteredAt: b.RegisteredAt,
		TerminalID:   types.UUIDString(b.TerminalID),
		EmployeeID:   b.EmployeeID.String(),
	}
	if b.Terminal != nil {
		t := terminal.ToResponse(*b.Terminal)
		res.Terminal = &t
	}
	if b.Employee != nil {
		e := employee.ToResponse(*b.Employee)
		res.Employee = &e
	}
	return res
}

func mapToListResponse(records []BiometricData) []BiometricDataResponse {
	res := make([]BiometricDataResponse, len(records))
	for i, b := range records {
		res[i] = ToResponse(b)
	}
	return res
}

func applyPatch(b *BiometricData, req BiometricDataPatchRequest) {
	req.Type.Apply(&b.Type)
	req.Vector.Apply(&b.Vector)
	req.TerminalID.Apply(&b.TerminalID)
	if req.EmployeeID != nil {
		b.EmployeeID = *req.EmployeeID
	}
}
