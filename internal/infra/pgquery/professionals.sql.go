package pgquery

import (
	"context"

	"github.com/google/uuid"
)

const getProfessionalByUserID = `-- name: GetProfessionalByUserID :one
SELECT p.user_id, p.display_name, p.hourly_rate_cents, p.currency, (p.is_active AND u.is_active) AS is_active
FROM professionals p
JOIN users u ON u.id = p.user_id
WHERE p.user_id = $1
`

func (q *Queries) GetProfessionalByUserID(ctx context.Context, db DBTX, userID uuid.UUID) (Professionals, error) {
	row := db.QueryRow(ctx, getProfessionalByUserID, userID)
	var i Professionals
	err := row.Scan(
		&i.UserID,
		&i.DisplayName,
		&i.HourlyRateCents,
		&i.Currency,
		&i.IsActive,
	)
	return i, err
}
