package recognition

import (
	"time"

	"github.com/miguelF21/Facepay/internal/accessattempt"
	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/shared/types"

	"github.com/google/uuid"
)

type RecognitionResultRequest struct {
	Match      types.Nullable[bool]    `json:"match"`
	EmployeeID types.NullableUUID      `json:"employee_id"`
	Confidence types.Nullable[float64] `json:"confidence"`
	AttemptID  uuid.UUID               `json:"attempt_id" binding:"required"`
}

type RecognitionResultPatchRequest struct {
	Match      types.Nullable[bool]    `json:"match"`
	EmployeeID types.NullableUUID      `json:"employee_id"`
	Confidence types.Nullable[float64] `json:"confidence"`
	AttemptID  *uuid.UUID              `json:"attempt_id"`
}

func (r RecognitionResultRequest) toPatch() RecognitionResultPatchRequest {
	attemptID := r.AttemptID
	return RecognitionResultPatchRequest{
		Match:      r.Match,
		EmployeeID: r.EmployeeID,
		Confidence: r.Confidence,
		AttemptID:  &attemptID,
	}
}

type RecognitionResultResponse struct {
	ID         string                               `json:"id"`
	Match      *bool                                `json:"match"`
	EmployeeID *string                              `json:"employee_id"`
	Confidence *float64                             `json:"confidence"`
	Timestamp  time.Time                            `json:"timestamp"`
	AttemptID  string                               `json:"attempt_id"`
	Employee   *employee.EmployeeResponse           `json:"employee"`
	Attempt    *accessattempt.AccessAttemptResponse `json:"attempt"`
}

func ToResponse(r RecognitionResult) RecognitionResultResponse {
	res := RecognitionResultResponse{
		ID:         r.ID.String(),
		Match:      r.Match,
		EmployeeID: types.UUIDString(r.EmployeeID),
		Confidence: r.Confidence,
		Timestamp:  r.Timestamp,
		AttemptID:  r.AttemptID.String(),
	}
	if r.Employee != nil {
		e := employee.ToResponse(*r.Employee)
		res.Employee = &e
	}
	if r.Attempt != nil {
		a := accessattempt.ToResponse(*r.Attempt)
		res.Attempt = &a
	}
	return res
}

func mapToListResponse(results []RecognitionResult) []RecognitionResultResponse {
	res := make([]RecognitionResultResponse, len(results))
	for i, r := range results {
		res[i] = ToResponse(r)
	}
	return res
}

func applyPatch(r *RecognitionResult, req RecognitionResultPatchRequest) {
	req.Match.Apply(&r.Match)
	req.EmployeeID.Apply(&r.EmployeeID)
	req.Confidence.Apply(&r.Confidence)
	if req.AttemptID != nil {
		r.AttemptID = *req.AttemptID
	}
}
