package contact

import "github.com/miguelF21/Facepay/internal/shared/types"

// ContactRequest serves create, full and partial update: every field is
// optional.
type ContactRequest struct {
	Phone types.Nullable[string] `json:"phone" binding:"omitempty,max=16"`
	Email types.Nullable[string] `json:"email" binding:"omitempty,max=40"`
}

type ContactResponse struct {
	ID    string  `json:"id"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

func ToResponse(c Contact) ContactResponse {
	return ContactResponse{
		ID:    c.ID.String(),
		Phone: c.Phone,
		Email: c.Email,
	}
}

func mapToListResponse(contacts []Contact) []ContactResponse {
	res := make([]ContactResponse, len(contacts))
	for i, c := range contacts {
		res[i] = ToResponse(c)
	}
	return res
}

func applyRequest(c *Contact, req ContactRequest) {
	req.Phone.Apply(&c.Phone)
	req.Email.Apply(&c.Email)
}
