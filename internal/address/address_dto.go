package address

import "github.com/miguelF21/Facepay/internal/shared/types"

// AddressRequest serves create, full and partial update: every field is
// optional.
type AddressRequest struct {
	Street     types.Nullable[string] `json:"street" binding:"omitempty,max=72"`
	City       types.Nullable[string] `json:"city" binding:"omitempty,max=32"`
	State      types.Nullable[string] `json:"state" binding:"omitempty,max=32"`
	PostalCode types.Nullable[string] `json:"postal_code" binding:"omitempty,max=16"`
}

type AddressResponse struct {
	ID         string  `json:"id"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
}

func ToResponse(a Address) AddressResponse {
	return AddressResponse{
		ID:         a.ID.String(),
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
	}
}

func mapToListResponse(addresses []Address) []AddressResponse {
	res := make([]AddressResponse, len(addresses))
	for i, a := range addresses {
		res[i] = ToResponse(a)
	}
	return res
}

func applyRequest(a *Address, req AddressRequest) {
	req.Street.Apply(&a.Street)
	req.City.Apply(&a.City)
	req.State.Apply(&a.State)
	req.PostalCode.Apply(&a.PostalCode)
}
