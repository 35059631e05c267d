package user

import (
	"time"

	"github.com/miguelF21/Facepay/internal/shared/types"
)

// UserRequest is the body of POST and PUT. Absent optional fields keep
// their current value on PUT.
type UserRequest struct {
	Username types.Nullable[string] `json:"username" binding:"omitempty,max=64"`
	Email    string                 `json:"email" binding:"required,max=72"`
	Password types.Nullable[string] `json:"password" binding:"omitempty,min=8,max=72"`
	Role     *Role                  `json:"role" binding:"omitnil,oneof=admin operator employee"`
	Active   *bool                  `json:"active"`
}

type UserPatchRequest struct {
	Username types.Nullable[string] `json:"username" binding:"omitempty,max=64"`
	Email    *string                `json:"email" binding:"omitnil,min=1,max=72"`
	Password types.Nullable[string] `json:"password" binding:"omitempty,min=8,max=72"`
	Role     *Role                  `json:"role" binding:"omitnil,oneof=admin operator employee"`
	Active   *bool                  `json:"active"`
}

func (r UserRequest) toPatch() UserPatchRequest {
	email := r.Email
	return UserPatchRequest{
		Username: r.Username,
		Email:    &email,
		Password: r.Password,
		Role:     r.Role,
		Active:   r.Active,
	}
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  *string   `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToResponse is also used by resources that expand a user.
func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func mapToListResponse(users []User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = ToResponse(u)
	}
	return res
}
