package converter

import (
	"salon-booking/internal/domain/catalog"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"
)

func ServiceToCreateParams(s *catalog.Service) (sqlc.CreateServiceParams, error) {
	price, err := pgconv.IntToInt32(s.PriceCents())
	if err != nil {
		return sqlc.CreateServiceParams{}, err
	}
	duration, err := pgconv.IntToInt32(s.DurationMinutes())
	if err != nil {
		return sqlc.CreateServiceParams{}, err
	}
	return sqlc.CreateServiceParams{
		Name:            s.Name(),
		Description:     pgconv.OptionalStringToPgtype(s.Description()),
		PriceCents:      price,
		DurationMinutes: duration,
		ImageUrl:        pgconv.OptionalStringToPgtype(s.ImageURL()),
		Active:          s.IsActive(),
	}, nil
}

func ServiceToUpdateParams(s *catalog.Service) (sqlc.UpdateServiceParams, error) {
	p, err := ServiceToCreateParams(s)
	if err != nil {
		return sqlc.UpdateServiceParams{}, err
	}
	return sqlc.UpdateServiceParams{
		ID:              s.ID(),
		Name:            p.Name,
		Description:     p.Description,
		PriceCents:      p.PriceCents,
		DurationMinutes: p.DurationMinutes,
		ImageUrl:        p.ImageUrl,
		Active:          p.Active,
	}, nil
}

func ServiceFromInfra(row sqlc.Services) *catalog.Service {
	return catalog.Reconstruct(row.ID, catalog.Attributes{
		Name:            row.Name,
		Description:     pgconv.StringFromPgtype(row.Description),
		PriceCents:      int(row.PriceCents),
		DurationMinutes: int(row.DurationMinutes),
		ImageURL:        pgconv.StringFromPgtype(row.ImageUrl),
		Active:          row.Active,
	})
}
