//go:build unit || e2e

package builder

import (
	"time"

	"salon-booking/internal/domain/user"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Phone     *string
	Role      user.Role
	IsActive  bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        uuid.New(),
		Email:     "claire@example.com",
		FirstName: "Claire",
		LastName:  "Martin",
		Role:      user.RoleCustomer,
		IsActive:  true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildActor() shared.Actor {
	return shared.Actor{UserID: u.ID, Role: u.Role}
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	var phone pgtype.Text
	if u.Phone != nil {
		phone = pgtype.Text{String: *u.Phone, Valid: true}
	}
	return sqlc.Users{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     phone,
		Role:      u.Role.String(),
		IsActive:  u.IsActive,
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = &phone
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
