package receipt

import (
	"time"

	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/payroll"
	"github.com/miguelF21/Facepay/internal/shared/types"

	"github.com/google/uuid"
)

type PayReceiptRequest struct {
	PayrollID    uuid.UUID              `json:"payroll_id" binding:"required"`
	EmployeeID   uuid.UUID              `json:"employee_id" binding:"required"`
	PDFReference types.Nullable[string] `json:"pdf_reference" binding:"omitempty,max=255"`
}

type PayReceiptPatchRequest struct {
	PayrollID    *uuid.UUID             `json:"payroll_id"`
	EmployeeID   *uuid.UUID             `json:"employee_id"`
	PDFReference types.Nullable[string] `json:"pdf_reference" binding:"omitempty,max=255"`
}

func (r PayReceiptRequest) toPatch() PayReceiptPatchRequest {
	payrollID, employeeID := r.PayrollID, r.EmployeeID
	return PayReceiptPatchRequest{
		PayrollID:    &payrollID,
		EmployeeID:   &employeeID,
		PDFReference: r.PDFReference,
	}
}

type PayReceiptResponse struct {
	ID           string                     `json:"id"`
	PayrollID    string                     `json:"payroll_id"`
	EmployeeID   string                     `json:"employee_id"`
	GeneratedAt  time.Time                  `json:"generated_at"`
	PDFReference *string                    `json:"pdf_reference"`
	Payroll      *payroll.PayrollResponse   `json:"payroll"`
	Employee     *employee.EmployeeResponse `json:"employee"`
}

func ToResponse(r PayReceipt) PayReceiptResponse {
	res := PayReceiptResponse{
		ID:           r.ID.String(),
		PayrollID:    r.PayrollID.String(),
		EmployeeID:   r.EmployeeID.String(),
		GeneratedAt:  r.GeneratedAt,
		PDFReference: r.PDFReference,
	}
	if r.Payroll != nil {
		p := payroll.ToResponse(*r.Payroll)
		res.Payroll = &p
	}
	if r.Employee != nil {
		e := employee.ToResponse(*r.Employee)
		res.Employee = &e
	}
	return res
}

func mapToListResponse(receipts []PayReceipt) []PayReceiptResponse {
	res := make([]PayReceiptResponse, len(receipts))
	for i, r := range receipts {
		res[i] = ToResponse(r)
	}
	return res
}

func applyPatch(r *PayReceipt, req PayReceiptPatchRequest) {
	if req.PayrollID != nil {
		r.PayrollID = *req.PayrollID
	}
	if req.EmployeeID != nil {
		r.EmployeeID = *req.EmployeeID
	}
	req.PDFReference.Apply(&r.PDFReference)
}
