package authtoken

import (
	"time"

	"github.com/miguelF21/Facepay/internal/shared/types"
	"github.com/miguelF21/Facepay/internal/user"

	"github.com/google/uuid"
)

type AuthTokenRequest struct {
	Token     string                    `json:"token" binding:"required,max=255"`
	UserID    uuid.UUID                 `json:"user_id" binding:"required"`
	ExpiresAt types.Nullable[time.Time] `json:"expires_at"`
}

// AuthTokenPatchRequest cannot change the token value, which is the key.
type AuthTokenPatchRequest struct {
	UserID    *uuid.UUID                `json:"user_id"`
	ExpiresAt types.Nullable[time.Time] `json:"expires_at"`
}

func (r AuthTokenRequest) toPatch() AuthTokenPatchRequest {
	userID := r.UserID
	return AuthTokenPatchRequest{
		UserID:    &userID,
		ExpiresAt: r.ExpiresAt,
	}
}

type AuthTokenResponse struct {
	Token     string             `json:"token"`
	UserID    string             `json:"user_id"`
	ExpiresAt *time.Time         `json:"expires_at"`
	User      *user.UserResponse `json:"user"`
}

func ToResponse(t AuthToken) AuthTokenResponse {
	res := AuthTokenResponse{
		Token:     t.Token,
		UserID:    t.UserID.String(),
		ExpiresAt: t.ExpiresAt,
	}
	if t.User != nil {
		u := user.ToResponse(*t.User)
		res.User = &u
	}
	return res
}

func mapToListResponse(tokens []AuthToken) []AuthTokenResponse {
	res := make([]AuthTokenResponse, len(tokens))
	for i, t := range tokens {
		res[i] = ToResponse(t)
	}
	return res
}

func applyPatch(t *AuthToken, req AuthTokenPatchRequest) {
	if req.UserID != nil {
		t.UserID = *req.UserID
	}
	req.ExpiresAt.Apply(&t.ExpiresAt)
}
