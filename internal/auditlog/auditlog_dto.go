package auditlog

import (
	"time"

	"github.com/miguelF21/Facepay/internal/shared/types"
	"github.com/miguelF21/Facepay/internal/user"
)

type AuditLogRequest struct {
	Action  types.Nullable[string]     `json:"action" binding:"omitempty,max=150"`
	UserID  types.NullableUUID         `json:"user_id"`
	Details types.Nullable[types.JSON] `json:"details"`
}

type AuditLogResponse struct {
	ID        string             `json:"id"`
	Action    *string            `json:"action"`
	UserID    *string            `json:"user_id"`
	Timestamp time.Time          `json:"timestamp"`
	Details   types.JSON         `json:"details"`
	User      *user.UserResponse `json:"user"`
}

func ToResponse(l AuditLog) AuditLogResponse {
	res := AuditLogResponse{
		ID:        l.ID.String(),
		Action:    l.Action,
		UserID:    types.UUIDString(l.UserID),
		Timestamp: l.Timestamp,
		Details:   l.Details,
	}
	if l.User != nil {
		u := user.ToResponse(*l.User)
		res.User = &u
	}
	return res
}

func mapToListResponse(logs []AuditLog) []AuditLogResponse {
	res := make([]AuditLogResponse, len(logs))
	for i, l := range logs {
		res[i] = ToResponse(l)
	}
	return res
}

func applyRequest(l *AuditLog, req AuditLogRequest) {
	req.Action.Apply(&l.Action)
	req.UserID.Apply(&l.UserID)
	if req.Details.Valid {
		l.Details = nil
		if req.Details.Value != nil {
			l.Details = *req.Details.Value
		}
	}
}
