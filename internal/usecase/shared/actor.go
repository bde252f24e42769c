package shared

import (
	"salon-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) IsStaff() bool {
	return a.Role.AtLeast(user.RoleStaff)
}

func (a Actor) IsAdmin() bool {
	return a.Role.AtLeast(user.RoleAdmin)
}

// CanAccess reports whether the actor may see or act on a resource owned by ownerID.
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.IsStaff() || (a.UserID != uuid.Nil && a.UserID == ownerID)
}
