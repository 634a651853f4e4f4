package commands

import (
	"context"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/payment"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/shared"
)

const paymentFailedReason = "payment failed"

// ApplyPaymentSignal records one provider delivery and applies it at most
// once. A rejected signal is still recorded and is reported with an
// InvalidTransitionError alongside the result.
func (c *Coordinator) ApplyPaymentSignal(ctx context.Context, in PaymentSignalInput) (*PaymentResult, error) {
	sig, err := payment.NewSignal(in.BookingID, in.Status, in.SourceEventID, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var (
		result  *PaymentResult
		current booking.Status
		cs      changeSet
	)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		cs.reset(sig.BookingID, nil)

		b, err := lockBooking(ctx, tx, sig.BookingID)
		if err != nil {
			return err
		}
		current = b.Status()
		outcome := decidePaymentOutcome(sig, current)

		recorded, err := tx.PaymentSignals().Record(ctx, tx.DB(), sig, outcome)
		if err != nil {
			return err
		}
		if !recorded {
			result = &PaymentResult{BookingID: b.ID(), Outcome: payment.OutcomeDuplicate, BookingStatus: current}
			return nil
		}

		if outcome == payment.OutcomeApplied {
			if err := c.applyPayment(ctx, tx, b, sig, &cs); err != nil {
				return err
			}
		}

		result = &PaymentResult{BookingID: b.ID(), Outcome: outcome, BookingStatus: b.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.afterCommit(ctx, &cs)
	c.metrics.PaymentSignal(string(result.Outcome))

	if result.Outcome == payment.OutcomeRejected {
		return result, &InvalidTransitionError{BookingID: result.BookingID, Current: current, Action: "apply payment to"}
	}
	return result, nil
}

// decidePaymentOutcome only lets a terminal payment status move a booking
// that is still waiting for payment.
func decidePaymentOutcome(sig payment.Signal, current booking.Status) payment.Outcome {
	switch {
	case sig.Status == payment.SignalPending:
		return payment.OutcomeIgnored
	case current != booking.StatusPendingPayment:
		return payment.OutcomeRejected
	default:
		return payment.OutcomeApplied
	}
}

func (c *Coordinator) applyPayment(ctx context.Context, tx shared.Tx, b *booking.Booking, sig payment.Signal, cs *changeSet) error {
	now := c.clock.Now()
	from := b.Status()

	topic := TopicBookingPaid
	switch sig.Status {
	case payment.SignalPaid:
		if err := b.MarkPaid(now); err != nil {
			return refuse(err, b, "mark paid")
		}
	case payment.SignalFailed:
		reason, err := booking.NewCancelReason(paymentFailedReason, paymentFailedReason)
		if err != nil {
			return err
		}
		if err := b.Cancel(now, reason, nil); err != nil {
			return refuse(err, b, "cancel")
		}
		topic = TopicBookingCancelled
	}

	if err := saveBooking(ctx, tx, b, from); err != nil {
		return err
	}
	cs.booking(from, b.Status())
	return emit(ctx, tx, topic, newLifecycleEvent(b, nil, now))
}
