package api

import (
	"net/http"
	"time"

	"consultation-booking/internal/domain/booking"
	resdto "consultation-booking/internal/handler/dto/response"
	"consultation-booking/internal/handler/httperr"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/commands"
	"consultation-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgBookingNotAvailable = "Booking not available"
	msgInternal            = "Internal server error"
)

var transitionMessages = map[booking.Status]string{
	booking.StatusCancelled:              "Booking is already cancelled",
	booking.StatusCompleted:              "Booking is already completed",
	booking.StatusNoShow:                 "Booking was marked as no-show",
	booking.StatusInProgress:             "Meeting is already in progress",
	booking.StatusPendingPayment:         "Booking is awaiting payment",
	booking.StatusWaitingForProfessional: "Booking is awaiting professional acceptance",
	booking.StatusConfirmed:              "Booking is already confirmed",
}

// abortWithUseCaseError maps use-case errors to responses. Unknown errors
// become 500 without leaking their text.
func abortWithUseCaseError(c *gin.Context, err error, now time.Time) {
	var transition *commands.InvalidTransitionError
	var notReady *commands.NotReadyError

	switch {
	case errs.As(err, &notReady):
		httperr.AbortWithError(c, http.StatusConflict, err, "Meeting is not ready to join", resdto.NotReadyDetail{
			Reason:     string(notReady.Reason),
			OpensAt:    notReady.OpensAt,
			ClosesAt:   notReady.ClosesAt,
			ServerTime: now,
		})
	case errs.As(err, &transition):
		msg, ok := transitionMessages[transition.Current]
		if !ok {
			msg = "Booking cannot change state"
		}
		httperr.AbortWithError(c, http.StatusConflict, err, msg, gin.H{"currentStatus": transition.Current.String()})
	case errs.Is(err, commands.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking changed concurrently, retry the request", nil)
	case errs.Is(err, commands.ErrBookingNotFound),
		errs.Is(err, queries.ErrBookingNotFound),
		errs.Is(err, commands.ErrForbidden):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgBookingNotAvailable, nil)
	case errs.Is(err, commands.ErrProfessionalNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Professional not found", nil)
	case errs.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", gin.H{"reason": domainReason(err)})
	case errs.Is(err, commands.ErrDuplicateRequest):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Idempotency key was used with a different request", nil)
	case errs.Is(err, commands.ErrIdempotencyInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Request is currently being processed", nil)
	case errs.Is(err, queries.ErrListForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Only professionals have an acceptance queue", nil)
	case errs.Is(err, queries.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
	}
}

var domainReasons = []struct {
	err    error
	reason string
}{
	{booking.ErrInvalidDuration, "duration is outside the allowed range"},
	{booking.ErrLeadTimeNotMet, "booking must be made further in advance"},
	{booking.ErrSelfBooking, "cannot book yourself"},
	{booking.ErrProfessionalUnavailable, "professional is not accepting bookings"},
	{booking.ErrInvalidSchedule, "invalid schedule"},
	{booking.ErrNoteTooLong, "notes are too long"},
	{booking.ErrReasonTooLong, "reason is too long"},
	{booking.ErrInvalidMoney, "price could not be computed"},
}

func domainReason(err error) string {
	for _, r := range domainReasons {
		if errs.Is(err, r.err) {
			return r.reason
		}
	}
	return "invalid request"
}
