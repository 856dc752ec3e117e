// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"github.com/Danielluzius/coderr-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated identity a request acts as. It is resolved once
// per request by the authentication middleware, so business rules check an
// explicit role tag instead of probing for profile rows.
type Actor struct {
	UserID  uuid.UUID
	Role    entity.Role
	IsStaff bool
}

// IsBusiness reports whether the actor holds the business role.
func (a Actor) IsBusiness() bool {
	return a.Role == entity.RoleBusiness
}

// IsCustomer reports whether the actor holds the customer role.
func (a Actor) IsCustomer() bool {
	return a.Role == entity.RoleCustomer
}
