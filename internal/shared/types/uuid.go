package types

import "github.com/google/uuid"

// UUIDString renders an optional foreign key, nil stays nil.
func UUIDString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
