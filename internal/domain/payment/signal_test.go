//go:build unit

package payment_test

import (
	"strings"
	"testing"
	"time"

	"consultation-booking/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignal(t *testing.T) {
	bookingID := uuid.New()
	now := time.Now()

	testCases := []struct {
		name      string
		bookingID uuid.UUID
		status    string
		eventID   string
		expect    payment.SignalStatus
		errIs     error
	}{
		{name: "paid", bookingID: bookingID, status: "paid", eventID: "evt_1", expect: payment.SignalPaid},
		{name: "status is case-insensitive", bookingID: bookingID, status: " FAILED ", eventID: "evt_2", expect: payment.SignalFailed},
		{name: "pending", bookingID: bookingID, status: "pending", eventID: "evt_3", expect: payment.SignalPending},
		{name: "unknown status", bookingID: bookingID, status: "refunded", eventID: "evt_4", errIs: payment.ErrInvalidSignalStatus},
		{name: "missing event id", bookingID: bookingID, status: "paid", eventID: "  ", errIs: payment.ErrMissingSourceEvent},
		{name: "event id too long", bookingID: bookingID, status: "paid", eventID: strings.Repeat("e", 256), errIs: payment.ErrMissingSourceEvent},
		{name: "missing booking", bookingID: uuid.Nil, status: "paid", eventID: "evt_5", errIs: payment.ErrMissingBooking},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sig, err := payment.NewSignal(tc.bookingID, tc.status, tc.eventID, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, sig.Status)
			assert.Equal(t, strings.TrimSpace(tc.eventID), sig.SourceEventID)
			assert.Equal(t, now, sig.ReceivedAt)
		})
	}
}
