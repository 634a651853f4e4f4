package readstore

import (
	"context"

	"consultation-booking/internal/infra"
	"consultation-booking/internal/infra/pgquery"
	"consultation-booking/internal/pkg/pgconv"
	"consultation-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProfessionalReadQueries interface {
	GetProfessionalByUserID(ctx context.Context, db pgquery.DBTX, userID uuid.UUID) (pgquery.Professionals, error)
}

type ProfessionalReadStore struct {
	queries ProfessionalReadQueries
	db      pgquery.DBTX
}

func NewProfessionalReadStore(queries ProfessionalReadQueries, db pgquery.DBTX) *ProfessionalReadStore {
	return &ProfessionalReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProfessionalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ProfessionalSnapshot, error) {
	row, err := r.queries.GetProfessionalByUserID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("professional not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find professional", err)
	}

	return &shared.ProfessionalSnapshot{
		ID:              row.UserID,
		DisplayName:     row.DisplayName,
		HourlyRateCents: row.HourlyRateCents,
		Currency:        row.Currency,
		Active:          row.IsActive,
	}, nil
}
