package accessattempt

import (
	"time"

	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/shared/types"
	"github.com/miguelF21/Facepay/internal/terminal"
)

// AccessAttemptRequest serves create, full and partial update.
type AccessAttemptRequest struct {
	TerminalID types.NullableUUID     `json:"terminal_id"`
	Method     types.Nullable[string] `json:"method" binding:"omitempty,max=16"`
	Result     types.Nullable[string] `json:"result" binding:"omitempty,max=16"`
	EmployeeID types.NullableUUID     `json:"employee_id"`
}

type AccessAttemptResponse struct {
	ID         string                     `json:"id"`
	TerminalID *string                    `json:"terminal_id"`
	Timestamp  time.Time                  `json:"timestamp"`
	Method     *string                    `json:"method"`
	Result     *string                    `json:"result"`
	EmployeeID *string                    `json:"employee_id"`
	Terminal   *terminal.TerminalResponse `json:"terminal"`
	Employee   *employee.EmployeeResponse `json:"employee"`
}

func ToResponse(a AccessAttempt) AccessAttemptResponse {
	res := AccessAttemptResponse{
		ID:         a.ID.String(),
		TerminalID: types.UUIDString(a.TerminalID),
		Timestamp:  a.Timestamp,
		Method:     a.Method,
		Result:     a.Result,
		EmployeeID: types.UUIDString(a.EmployeeID),
	}
	if a.Terminal != nil {
		t := terminal.ToResponse(*a.Terminal)
		res.Terminal = &t
	}
	if a.Employee != nil {
		e := employee.ToResponse(*a.Employee)
		res.Employee = &e
	}
	return res
}

func mapToListResponse(attempts []AccessAttempt) []AccessAttemptResponse {
	res := make([]AccessAttemptResponse, len(attempts))
	for i, a := range attempts {
		res[i] = ToResponse(a)
	}
	return res
}

func applyRequest(a *AccessAttempt, req AccessAttemptRequest) {
	req.TerminalID.Apply(&a.TerminalID)
	req.Method.Apply(&a.Method)
	req.Result.Apply(&a.Result)
	req.EmployeeID.Apply(&a.EmployeeID)
}
