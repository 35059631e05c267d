package concept

import (
	"github.com/miguelF21/Facepay/internal/shared/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ConceptRequest struct {
	Code        string                          `json:"code" binding:"required,max=24"`
	Description types.Nullable[string]          `json:"description" binding:"omitempty,max=120"`
	Amount      types.Nullable[decimal.Decimal] `json:"amount" binding:"omitempty,money"`
	PayrollID   uuid.UUID                       `json:"payroll_id" binding:"required"`
}

// ConceptPatchRequest has no code: the code identifies the concept and is
// fixed once created.
type ConceptPatchRequest struct {
	Description types.Nullable[string]          `json:"description" binding:"omitempty,max=120"`
	Amount      types.Nullable[decimal.Decimal] `json:"amount" binding:"omitempty,money"`
	PayrollID   *uuid.UUID                      `json:"payroll_id"`
}

func (r ConceptRequest) toPatch() ConceptPatchRequest {
	payrollID := r.PayrollID
	return ConceptPatchRequest{
		Description: r.Description,
		Amount:      r.Amount,
		PayrollID:   &payrollID,
	}
}

type ConceptResponse struct {
	Code        string  `json:"code"`
	Description *string `json:"description"`
	Amount      *string `json:"amount"`
	PayrollID   string  `json:"payroll_id"`
}

func ToResponse(c Concept) ConceptResponse {
	return ConceptResponse{
		Code:        c.Code,
		Description: c.Description,
		Amount:      types.MoneyString(c.Amount),
		PayrollID:   c.PayrollID.String(),
	}
}

func mapToListResponse(concepts []Concept) []ConceptResponse {
	res := make([]ConceptResponse, len(concepts))
	for i, c := range concepts {
		res[i] = ToResponse(c)
	}
	return res
}

func applyPatch(c *Concept, req ConceptPatchRequest) {
	req.Description.Apply(&c.Description)
	req.Amount.Apply(&c.Amount)
	if req.PayrollID != nil {
		c.PayrollID = *req.PayrollID
	}
}
