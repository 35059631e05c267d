package sysconfig

import (
	"github.com/miguelF21/Facepay/internal/shared/types"
)

type SystemConfigRequest struct {
	Settings types.Nullable[types.JSON] `json:"settings"`
}

type SystemConfigResponse struct {
	ID       string     `json:"id"`
	Settings types.JSON `json:"settings"`
}

func ToResponse(c SystemConfig) SystemConfigResponse {
	return SystemConfigResponse{
		ID:       c.ID.String(),
		Settings: c.Settings,
	}
}

func mapToListResponse(configs []SystemConfig) []SystemConfigResponse {
	res := make([]SystemConfigResponse, len(configs))
	for i, c := range configs {
		res[i] = ToResponse(c)
	}
	return res
}

// applyRequest resets settings to an empty object when they are null.
func applyRequest(c *SystemConfig, req SystemConfigRequest) {
	if !req.Settings.Valid {
		return
	}
	if req.Settings.Value == nil || req.Settings.Value.IsNull() {
		c.Settings = types.EmptyObject()
		return
	}
	c.Settings = *req.Settings.Value
}
