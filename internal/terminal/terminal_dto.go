package terminal

import "github.com/miguelF21/Facepay/internal/shared/types"

// TerminalRequest serves create, full and partial update. Status falls
// back to "active" on create and is never cleared.
type TerminalRequest struct {
	Location        types.Nullable[string] `json:"location" binding:"omitempty,max=64"`
	IPAddress       types.Nullable[string] `json:"ip_address" binding:"omitempty,max=64"`
	FirmwareVersion types.Nullable[string] `json:"firmware_version" binding:"omitempty,max=32"`
	Status          *string                `json:"status" binding:"omitnil,min=1,max=32"`
}

type TerminalResponse struct {
	ID              string  `json:"id"`
	Location        *string `json:"location"`
	IPAddress       *string `json:"ip_address"`
	FirmwareVersion *string `json:"firmware_version"`
	Status          string  `json:"status"`
}

func ToResponse(t Terminal) TerminalResponse {
	return TerminalResponse{
		ID:              t.ID.String(),
		Location:        t.Location,
		IPAddress:       t.IPAddress,
		FirmwareVersion: t.FirmwareVersion,
		Status:          t.Status,
	}
}

func mapToListResponse(terminals []Terminal) []TerminalResponse {
	res := make([]TerminalResponse, len(terminals))
	for i, t := range terminals {
		res[i] = ToResponse(t)
	}
	return res
}

func applyRequest(t *Terminal, req TerminalRequest) {
	req.Location.Apply(&t.Location)
	req.IPAddress.Apply(&t.IPAddress)
	req.FirmwareVersion.Apply(&t.FirmwareVersion)
	if req.Status != nil {
		t.Status = *req.Status
	}
}
