//go:build unit

package meeting_test

import (
	"testing"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/meeting"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestProject(t *testing.T) {
	start := t0
	window := booking.JoinWindow{OpensAt: start.Add(-10 * time.Minute), ClosesAt: start.Add(35 * time.Minute)}
	token := meeting.RoomToken("room-abc")
	expires := start.Add(18 * time.Minute)

	testCases := []struct {
		name   string
		snap   meeting.Snapshot
		now    time.Time
		reveal bool
		expect meeting.WaitingRoom
	}{
		{
			name: "awaiting payment",
			snap: meeting.Snapshot{BookingStatus: booking.StatusPendingPayment, MeetingStatus: meeting.StatusPending},
			now:  start.Add(-time.Hour),
			expect: meeting.WaitingRoom{
				BookingStatus:  booking.StatusPendingPayment,
				MeetingStatus:  meeting.StatusPending,
				NotReadyReason: booking.NotReadyNotConfirmed,
			},
		},
		{
			name:   "confirmed but too early",
			snap:   meeting.Snapshot{BookingStatus: booking.StatusConfirmed, MeetingStatus: meeting.StatusWaiting, RoomToken: token},
			now:    start.Add(-11 * time.Minute),
			reveal: true,
			expect: meeting.WaitingRoom{
				BookingStatus:  booking.StatusConfirmed,
				MeetingStatus:  meeting.StatusWaiting,
				IsWaiting:      true,
				NotReadyReason: booking.NotReadyTooEarly,
			},
		},
		{
			name:   "confirmed inside window",
			snap:   meeting.Snapshot{BookingStatus: booking.StatusConfirmed, MeetingStatus: meeting.StatusWaiting, RoomToken: token},
			now:    start,
			reveal: true,
			expect: meeting.WaitingRoom{
				BookingStatus: booking.StatusConfirmed,
				MeetingStatus: meeting.StatusWaiting,
				IsWaiting:     true,
				CanStart:      true,
				CanJoin:       true,
				RoomToken:     &token,
			},
		},
		{
			name: "confirmed inside window for a non-party hides the token",
			snap: meeting.Snapshot{BookingStatus: booking.StatusConfirmed, MeetingStatus: meeting.StatusWaiting, RoomToken: token},
			now:  start,
			expect: meeting.WaitingRoom{
				BookingStatus: booking.StatusConfirmed,
				MeetingStatus: meeting.StatusWaiting,
				IsWaiting:     true,
				CanStart:      true,
			},
		},
		{
			name:   "confirmed past deadline",
			snap:   meeting.Snapshot{BookingStatus: booking.StatusConfirmed, MeetingStatus: meeting.StatusWaiting, RoomToken: token},
			now:    window.ClosesAt,
			reveal: true,
			expect: meeting.WaitingRoom{
				BookingStatus:  booking.StatusConfirmed,
				MeetingStatus:  meeting.StatusWaiting,
				IsWaiting:      true,
				NotReadyReason: booking.NotReadyTooLate,
			},
		},
		{
			name:   "live meeting",
			snap:   meeting.Snapshot{BookingStatus: booking.StatusInProgress, MeetingStatus: meeting.StatusActive, RoomToken: token, ExpiresAt: &expires},
			now:    start.Add(5 * time.Minute),
			reveal: true,
			expect: meeting.WaitingRoom{
				BookingStatus: booking.StatusInProgress,
				MeetingStatus: meeting.StatusActive,
				IsActive:      true,
				CanJoin:       true,
				RoomToken:     &token,
				ExpiresAt:     &expires,
			},
		},
		{
			name:   "overrun not yet swept reads as completed",
			snap:   meeting.Snapshot{BookingStatus: booking.StatusInProgress, MeetingStatus: meeting.StatusActive, RoomToken: token, ExpiresAt: &expires},
			now:    expires,
			reveal: true,
			expect: meeting.WaitingRoom{
				BookingStatus: booking.StatusInProgress,
				MeetingStatus: meeting.StatusActive,
				IsCompleted:   true,
				ExpiresAt:     &expires,
			},
		},
		{
			name:   "expired",
			snap:   meeting.Snapshot{BookingStatus: booking.StatusCompleted, MeetingStatus: meeting.StatusExpired, RoomToken: token, ExpiresAt: &expires},
			now:    expires.Add(time.Minute),
			reveal: true,
			expect: meeting.WaitingRoom{
				BookingStatus: booking.StatusCompleted,
				MeetingStatus: meeting.StatusExpired,
				IsCompleted:   true,
				ExpiresAt:     &expires,
			},
		},
		{
			name:   "no-show",
			snap:   meeting.Snapshot{BookingStatus: booking.StatusNoShow, MeetingStatus: meeting.StatusCancelled, RoomToken: token},
			now:    window.ClosesAt.Add(time.Minute),
			reveal: true,
			expect: meeting.WaitingRoom{
				BookingStatus: booking.StatusNoShow,
				MeetingStatus: meeting.StatusCancelled,
				IsCompleted:   true,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.expect.OpensAt = window.OpensAt
			tc.expect.ClosesAt = window.ClosesAt
			tc.expect.ServerTime = tc.now

			actual := meeting.Project(tc.snap, window, tc.now, tc.reveal)
			if diff := cmp.Diff(tc.expect, actual); diff != "" {
				t.Errorf("WaitingRoom mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("projection is pure", func(t *testing.T) {
		snap := meeting.Snapshot{BookingStatus: booking.StatusConfirmed, MeetingStatus: meeting.StatusWaiting, RoomToken: token}
		first := meeting.Project(snap, window, start, true)
		second := meeting.Project(snap, window, start, true)
		assert.Equal(t, first, second)
	})
}
