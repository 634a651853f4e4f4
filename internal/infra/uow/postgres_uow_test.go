//go:build unit

package uow

import (
	"testing"
	"time"

	"consultation-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, want: true},
		{name: "marked deadlock", err: errs.Mark(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, errTransactionCommit), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "plain error", err: errs.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	retryable := &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	assert.True(t, shouldRetry(retryable, 0, 3))
	assert.False(t, shouldRetry(retryable, 3, 3))
	assert.False(t, shouldRetry(errs.New("boom"), 0, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 3; attempt++ {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5+time.Nanosecond)
	}
}

func TestFinalError(t *testing.T) {
	retryable := &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	plain := errs.New("check constraint")

	tests := []struct {
		name      string
		err       error
		attempt   int
		exhausted bool
	}{
		{name: "retryable error on the last attempt", err: retryable, attempt: 3, exhausted: true},
		{name: "plain error on the last attempt", err: plain, attempt: 3, exhausted: false},
		{name: "plain error on the first attempt", err: plain, attempt: 0, exhausted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := finalError(tt.err, tt.attempt, 3)
			assert.True(t, errs.Is(got, tt.err))
			assert.Equal(t, tt.exhausted, errs.Is(got, errMaxRetriesExceeded))
		})
	}
}
