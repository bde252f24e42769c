package readstore

import (
	"context"

	"salon-booking/internal/infra"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
}

// UserReadStore resolves active users. Inactive users are reported as not found.
type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) Bind(db sqlc.DBTX) queries.UserReadStore {
	return NewUserReadStore(r.queries, db)
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &shared.UserSnapshot{
		ID:        row.ID,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Role:      row.Role,
	}, nil
}
