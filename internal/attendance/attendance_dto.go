package attendance

import (
	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/shared/types"

	"github.com/google/uuid"
)

type AttendanceRequest struct {
	EmployeeID     uuid.UUID                       `json:"employee_id" binding:"required"`
	CheckIn        types.Nullable[types.ClockTime] `json:"check_in"`
	CheckOut       types.Nullable[types.ClockTime] `json:"check_out"`
	OriginTerminal types.Nullable[string]          `json:"origin_terminal" binding:"omitempty,max=64"`
	Status         *bool                           `json:"status"`
}

type AttendancePatchRequest struct {
	EmployeeID     *uuid.UUID                      `json:"employee_id"`
	CheckIn        types.Nullable[types.ClockTime] `json:"check_in"`
	CheckOut       types.Nullable[types.ClockTime] `json:"check_out"`
	OriginTerminal types.Nullable[string]          `json:"origin_terminal" binding:"omitempty,max=64"`
	Status         *bool                           `json:"status"`
}

func (r AttendanceRequest) toPatch() AttendancePatchRequest {
	employeeID := r.EmployeeID
	return AttendancePatchRequest{
		EmployeeID:     &employeeID,
		CheckIn:        r.CheckIn,
		CheckOut:       r.CheckOut,
		OriginTerminal: r.OriginTerminal,
		Status:         r.Status,
	}
}

type AttendanceResponse struct {
	ID             string                     `json:"id"`
	EmployeeID     string                     `json:"employee_id"`
	Date           types.Date                 `json:"date"`
	CheckIn        *types.ClockTime           `json:"check_in"`
	CheckOut       *types.ClockTime           `json:"check_out"`
	OriginTerminal *string                    `json:"origin_terminal"`
	Status         bool                       `json:"status"`
	Employee       *employee.EmployeeResponse `json:"employee"`
}

func ToResponse(a Attendance) AttendanceResponse {
	res := AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		Date:           a.Date,
		CheckIn:        a.CheckIn,
		CheckOut:       a.CheckOut,
		OriginTerminal: a.OriginTerminal,
		Status:         a.Status,
	}
	if a.Employee != nil {
		e := employee.ToResponse(*a.Employee)
		res.Employee = &e
	}
	return res
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, a := range rows {
		res[i] = ToResponse(a)
	}
	return res
}

func applyPatch(a *Attendance, req AttendancePatchRequest) {
	if req.EmployeeID != nil {
		a.EmployeeID = *req.EmployeeID
	}
	req.CheckIn.Apply(&a.CheckIn)
	req.CheckOut.Apply(&a.CheckOut)
	req.OriginTerminal.Apply(&a.OriginTerminal)
	if req.Status != nil {
		a.Status = *req.Status
	}
}
