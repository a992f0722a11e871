package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdays() []string {
	return []string{"lunes", "martes", "miércoles", "jueves", "viernes"}
}

func TestMatchShift_Empty(t *testing.T) {
	assert.Nil(t, MatchShift(nil, at(9, 0), time.UTC))
}

func TestMatchShift_IgnoresInactiveDays(t *testing.T) {
	shifts := []NamedShift{
		{Name: "finde", HoraEntrada: "09:00", ToleranciaMinutos: 60, ActiveDays: []string{"sábado", "domingo"}},
	}

	// at() is a Monday
	assert.Nil(t, MatchShift(shifts, at(9, 0), time.UTC))
}

func TestMatchShift_WithinTolerancePreferred(t *testing.T) {
	shifts := []NamedShift{
		// Closer in absolute terms but out of its own tolerance
		{Name: "estricto", HoraEntrada: "09:20", ToleranciaMinutos: 5, ActiveDays: weekdays()},
		// Farther but within tolerance
		{Name: "laxo", HoraEntrada: "08:50", ToleranciaMinutos: 60, ActiveDays: weekdays()},
	}

	got := MatchShift(shifts, at(9, 30), time.UTC)

	require.NotNil(t, got)
	assert.Equal(t, "laxo", got.Name)
}

func TestMatchShift_ClosestWhenNoneWithinTolerance(t *testing.T) {
	shifts := []NamedShift{
		{Name: "mañana", HoraEntrada: "06:00", ToleranciaMinutos: 5, ActiveDays: weekdays()},
		{Name: "tarde", HoraEntrada: "14:00", ToleranciaMinutos: 5, ActiveDays: weekdays()},
	}

	got := MatchShift(shifts, at(11, 0), time.UTC)

	require.NotNil(t, got, "an active-day shift is always assigned")
	assert.Equal(t, "tarde", got.Name)
}

func TestMatchShift_NearestWinsAmongTolerated(t *testing.T) {
	shifts := []NamedShift{
		{Name: "a", HoraEntrada: "09:00", ToleranciaMinutos: 30, ActiveDays: weekdays()},
		{Name: "b", HoraEntrada: "09:15", ToleranciaMinutos: 30, ActiveDays: weekdays()},
	}

	got := MatchShift(shifts, at(9, 12), time.UTC)

	require.NotNil(t, got)
	assert.Equal(t, "b", got.Name)
}
