package report

import (
	"time"

	"github.com/miguelF21/Facepay/internal/shared/types"
	"github.com/miguelF21/Facepay/internal/user"
)

type ReportRequest struct {
	Title         types.Nullable[string]     `json:"title" binding:"omitempty,max=116"`
	Filters       types.Nullable[types.JSON] `json:"filters"`
	FileReference types.Nullable[string]     `json:"file_reference" binding:"omitempty,max=64"`
	AdminID       types.NullableUUID         `json:"admin_id"`
}

type ReportResponse struct {
	ID            string             `json:"id"`
	Title         *string            `json:"title"`
	GeneratedAt   time.Time          `json:"generated_at"`
	Filters       types.JSON         `json:"filters"`
	FileReference *string            `json:"file_reference"`
	AdminID       *string            `json:"admin_id"`
	Admin         *user.UserResponse `json:"admin"`
}

func ToResponse(r Report) ReportResponse {
	res := ReportResponse{
		ID:            r.ID.String(),
		Title:         r.Title,
		GeneratedAt:   r.GeneratedAt,
		Filters:       r.Filters,
		FileReference: r.FileReference,
		AdminID:       types.UUIDString(r.AdminID),
	}
	if r.Admin != nil {
		a := user.ToResponse(*r.Admin)
		res.Admin = &a
	}
	return res
}

func mapToListResponse(reports []Report) []ReportResponse {
	res := make([]ReportResponse, len(reports))
	for i, r := range reports {
		res[i] = ToResponse(r)
	}
	return res
}

func applyRequest(r *Report, req ReportRequest) {
	req.Title.Apply(&r.Title)
	if req.Filters.Valid {
		r.Filters = nil
		if req.Filters.Value != nil {
			r.Filters = *req.Filters.Value
		}
	}
	req.FileReference.Apply(&r.FileReference)
	req.AdminID.Apply(&r.AdminID)
}
