package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func baseSchedule() *DepartmentSchedule {
	return &DepartmentSchedule{
		Department:        "ventas",
		HoraEntrada:       "09:00",
		HoraSalida:        "18:00",
		ToleranciaMinutos: 10,
	}
}

// 2026-03-02 is a Monday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func TestResolveForDate_NilSchedule(t *testing.T) {
	assert.Nil(t, ResolveForDate(nil, monday))
}

func TestResolveForDate_NoOverride(t *testing.T) {
	s := baseSchedule()

	day := ResolveForDate(s, monday)

	require.NotNil(t, day)
	assert.Equal(t, "09:00", day.HoraEntrada)
	assert.Equal(t, "18:00", day.HoraSalida)
	assert.Equal(t, 10, day.ToleranciaMinutos)
	assert.False(t, day.IsOverride)
	assert.False(t, day.IsSplit())
}

func TestResolveForDate_DayOff(t *testing.T) {
	s := baseSchedule()
	s.Overrides[time.Monday] = &DayOverride{DayOff: true}

	assert.Nil(t, ResolveForDate(s, monday))

	// Other weekdays are untouched by the Monday override
	tuesday := monday.AddDate(0, 0, 1)
	assert.NotNil(t, ResolveForDate(s, tuesday))
}

func TestResolveForDate_PartialOverride(t *testing.T) {
	s := baseSchedule()
	s.Overrides[time.Monday] = &DayOverride{
		HoraEntrada:       strPtr("10:00"),
		ToleranciaMinutos: intPtr(5),
	}

	day := ResolveForDate(s, monday)

	require.NotNil(t, day)
	assert.True(t, day.IsOverride)
	assert.Equal(t, "10:00", day.HoraEntrada)
	assert.Equal(t, "18:00", day.HoraSalida, "unset fields fall back to base")
	assert.Equal(t, 5, day.ToleranciaMinutos)
}

func TestResolveForDate_OverrideCanMakeDaySplit(t *testing.T) {
	s := baseSchedule()
	s.Overrides[time.Monday] = &DayOverride{
		HoraSalidaManana: strPtr("14:00"),
		HoraEntradaTarde: strPtr("15:00"),
	}

	day := ResolveForDate(s, monday)

	require.NotNil(t, day)
	assert.True(t, day.IsSplit())
}

func TestResolveForDate_OverrideCanToggleFlexible(t *testing.T) {
	s := baseSchedule()
	s.FlexibleSchedule = true
	s.Overrides[time.Monday] = &DayOverride{FlexibleSchedule: boolPtr(false)}

	day := ResolveForDate(s, monday)

	require.NotNil(t, day)
	assert.False(t, day.FlexibleSchedule)
}

func TestResolveForDate_DoesNotMutateInput(t *testing.T) {
	s := baseSchedule()
	s.Overrides[time.Monday] = &DayOverride{HoraEntrada: strPtr("10:00")}

	_ = ResolveForDate(s, monday)

	assert.Equal(t, "09:00", s.HoraEntrada)
}
