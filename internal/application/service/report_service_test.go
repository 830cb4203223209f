package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriodNamed(t *testing.T) {
	svc := NewReportService(nil, time.UTC)

	from, to, err := svc.ResolvePeriod("today", "", "")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, to.Sub(from))
	assert.Equal(t, 0, from.Hour())

	from, to, err = svc.ResolvePeriod("week", "", "")
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, to.Sub(from))
	assert.Equal(t, time.Monday, from.Weekday())

	from, to, err = svc.ResolvePeriod("month", "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, from.Day())
	assert.Equal(t, 1, to.Day())

	from, to, err = svc.ResolvePeriod("year", "", "")
	require.NoError(t, err)
	assert.Equal(t, time.January, from.Month())
	assert.Equal(t, from.Year()+1, to.Year())
}

func TestResolvePeriodCustomRange(t *testing.T) {
	svc := NewReportService(nil, time.UTC)

	from, to, err := svc.ResolvePeriod("", "2026-08-01", "2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), from)
	// The to date is inclusive, so the range ends at the next midnight.
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), to)
}

func TestResolvePeriodErrors(t *testing.T) {
	svc := NewReportService(nil, time.UTC)

	_, _, err := svc.ResolvePeriod("fortnight", "", "")
	assert.Error(t, err)

	_, _, err = svc.ResolvePeriod("", "2026-08-01", "")
	assert.Error(t, err, "missing to date")

	_, _, err = svc.ResolvePeriod("", "not-a-date", "2026-08-28")
	assert.Error(t, err)

	_, _, err = svc.ResolvePeriod("", "2026-08-28", "2026-08-01")
	assert.Error(t, err, "inverted range")
}
