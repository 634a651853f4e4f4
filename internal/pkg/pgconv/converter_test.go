//go:build unit

package pgconv_test

import (
	"math"
	"testing"
	"time"

	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalText(t *testing.T) {
	assert.False(t, pgconv.OptionalText("").Valid)

	txt := pgconv.OptionalText("bring notes")
	assert.True(t, txt.Valid)
	assert.Equal(t, "bring notes", txt.String)
}

func TestTimePtrRoundTrip(t *testing.T) {
	assert.False(t, pgconv.TimePtrToPgtype(nil).Valid)
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(nil)))

	loc := time.FixedZone("JST", 9*60*60)
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, loc)
	got := pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&at))
	require.NotNil(t, got)
	assert.True(t, got.Equal(at))
	assert.Equal(t, time.UTC, got.Location())
}

func TestUUIDPtr(t *testing.T) {
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))

	id := uuid.New()
	got := pgconv.UUIDPtrFromPgtype(pgconv.UUIDToPgtype(id))
	require.NotNil(t, got)
	assert.Equal(t, id, *got)
}

func TestIntToInt32(t *testing.T) {
	assert.Equal(t, int32(60), pgconv.IntToInt32(60))
	assert.Equal(t, int32(math.MaxInt32), pgconv.IntToInt32(math.MaxInt32+1))
	assert.Equal(t, int32(math.MinInt32), pgconv.IntToInt32(math.MinInt32-1))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(errs.Wrap(pgx.ErrNoRows, "lookup")))
	assert.False(t, pgconv.IsNoRows(errs.New("boom")))
}
