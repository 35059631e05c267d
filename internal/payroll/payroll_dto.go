package payroll

import (
	"github.com/miguelF21/Facepay/internal/concept"
	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/shared/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayrollRequest struct {
	EmployeeID  uuid.UUID                       `json:"employee_id" binding:"required"`
	PeriodStart types.Nullable[types.Date]      `json:"period_start"`
	PeriodEnd   types.Nullable[types.Date]      `json:"period_end"`
	GrossSalary types.Nullable[decimal.Decimal] `json:"gross_salary" binding:"omitempty,money"`
	Deductions  types.Nullable[decimal.Decimal] `json:"deductions" binding:"omitempty,money"`
	NetSalary   types.Nullable[decimal.Decimal] `json:"net_salary" binding:"omitempty,money"`
}

type PayrollPatchRequest struct {
	EmployeeID  *uuid.UUID                      `json:"employee_id"`
	PeriodStart types.Nullable[types.Date]      `json:"period_start"`
	PeriodEnd   types.Nullable[types.Date]      `json:"period_end"`
	GrossSalary types.Nullable[decimal.Decimal] `json:"gross_salary" binding:"omitempty,money"`
	Deductions  types.Nullable[decimal.Decimal] `json:"deductions" binding:"omitempty,money"`
	NetSalary   types.Nullable[decimal.Decimal] `json:"net_salary" binding:"omitempty,money"`
}

func (r PayrollRequest) toPatch() PayrollPatchRequest {
	employeeID := r.EmployeeID
	return PayrollPatchRequest{
		EmployeeID:  &employeeID,
		PeriodStart: r.PeriodStart,
		PeriodEnd:   r.PeriodEnd,
		GrossSalary: r.GrossSalary,
		Deductions:  r.Deductions,
		NetSalary:   r.NetSalary,
	}
}

type PayrollResponse struct {
	ID          string                     `json:"id"`
	EmployeeID  string                     `json:"employee_id"`
	PeriodStart *types.Date                `json:"period_start"`
	PeriodEnd   *types.Date                `json:"period_end"`
	GrossSalary *string                    `json:"gross_salary"`
	Deductions  *string                    `json:"deductions"`
	NetSalary   *string                    `json:"net_salary"`
	Employee    *employee.EmployeeResponse `json:"employee"`
	Concepts    []concept.ConceptResponse  `json:"concepts"`
}

func ToResponse(p Payroll) PayrollResponse {
	res := PayrollResponse{
		ID:          p.ID.String(),
		EmployeeID:  p.EmployeeID.String(),
		PeriodStart: p.PeriodStart,
		PeriodEnd:   p.PeriodEnd,
		GrossSalary: types.MoneyString(p.GrossSalary),
		Deductions:  types.MoneyString(p.Deductions),
		NetSalary:   types.MoneyString(p.NetSalary),
		Concepts:    make([]concept.ConceptResponse, len(p.Concepts)),
	}
	if p.Employee != nil {
		e := employee.ToResponse(*p.Employee)
		res.Employee = &e
	}
	for i, c := range p.Concepts {
		res.Concepts[i] = concept.ToResponse(c)
	}
	return res
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	res := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		res[i] = ToResponse(p)
	}
	return res
}

func applyPatch(p *Payroll, req PayrollPatchRequest) {
	if req.EmployeeID != nil {
		p.EmployeeID = *req.EmployeeID
	}
	req.PeriodStart.Apply(&p.PeriodStart)
	req.PeriodEnd.Apply(&p.PeriodEnd)
	req.GrossSalary.Apply(&p.GrossSalary)
	req.Deductions.Apply(&p.Deductions)
	req.NetSalary.Apply(&p.NetSalary)
}
