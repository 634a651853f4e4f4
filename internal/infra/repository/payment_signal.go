package repository

import (
	"context"

	"consultation-booking/internal/domain/payment"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/infra/pgquery"
	"consultation-booking/internal/pkg/pgconv"
)

type PaymentSignalWriteQueries interface {
	InsertPaymentSignal(ctx context.Context, db pgquery.DBTX, arg pgquery.InsertPaymentSignalParams) (int64, error)
}

type PaymentSignalRepository struct {
	queries PaymentSignalWriteQueries
}

func NewPaymentSignalRepository(queries PaymentSignalWriteQueries) *PaymentSignalRepository {
	return &PaymentSignalRepository{queries: queries}
}

func (r *PaymentSignalRepository) Record(ctx context.Context, tx pgquery.DBTX, sig payment.Signal, outcome payment.Outcome) (bool, error) {
	params := pgquery.InsertPaymentSignalParams{
		SourceEventID: sig.SourceEventID,
		BookingID:     sig.BookingID,
		Status:        string(sig.Status),
		Outcome:       string(outcome),
		ReceivedAt:    pgconv.TimeToPgtype(sig.ReceivedAt),
	}

	inserted, err := r.queries.InsertPaymentSignal(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to record payment signal", err)
	}
	return inserted > 0, nil
}
