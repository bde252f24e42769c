package user

import (
	"strings"

	"salon-booking/internal/pkg/errs"
)

var (
	ErrNotFound    = errs.NewNotFound("user not found")
	ErrInvalidRole = errs.NewInvalid("invalid role")
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

var roleRank = map[Role]int{
	RoleCustomer: 1,
	RoleStaff:    2,
	RoleAdmin:    3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r grants at least the privileges of min.
func (r Role) AtLeast(min Role) bool {
	return r.IsValid() && roleRank[r] >= roleRank[min]
}

func NewRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
