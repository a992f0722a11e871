package fichaje

import (
	"testing"
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func splitSchedule() *schedule.DepartmentSchedule {
	return &schedule.DepartmentSchedule{
		Department:        "ventas",
		HoraEntrada:       "09:00",
		HoraSalida:        "19:00",
		HoraSalidaManana:  strPtr("14:00"),
		HoraEntradaTarde:  strPtr("15:00"),
		ToleranciaMinutos: 10,
	}
}

func simpleSchedule() *schedule.DepartmentSchedule {
	return &schedule.DepartmentSchedule{
		Department:        "ventas",
		HoraEntrada:       "09:00",
		HoraSalida:        "18:00",
		ToleranciaMinutos: 10,
	}
}

// eventsAt builds alternating events on 2026-03-02 at the given HH:mm pairs.
func eventsAt(times ...[2]int) []Fichaje {
	events := make([]Fichaje, 0, len(times))
	for i, hm := range times {
		typ := TypeEntrada
		if i%2 == 1 {
			typ = TypeSalida
		}
		events = append(events, Fichaje{
			ID:        string(rune('a' + i)),
			UserID:    "u1",
			Type:      typ,
			Timestamp: time.Date(2026, 3, 2, hm[0], hm[1], 0, 0, time.UTC),
		})
	}
	return events
}

func TestGroupByDay_SplitDayComplete(t *testing.T) {
	// 09:00-14:00 and 15:00-19:00 worked on a jornada partida
	events := eventsAt([2]int{9, 0}, [2]int{14, 0}, [2]int{15, 0}, [2]int{19, 0})

	days := GroupByDay(events, splitSchedule(), time.UTC)

	require.Len(t, days, 1)
	day := days[0]
	assert.Equal(t, "2026-03-02", day.Date)
	require.Len(t, day.Sessions, 2)
	assert.Equal(t, 300+240, day.TotalMinutes)
	assert.Equal(t, 9.0, day.TotalHours)
	assert.True(t, day.Complete)
	assert.False(t, day.Late)
	assert.False(t, day.EarlyDeparture)
	require.NotNil(t, day.Turno)
	assert.Equal(t, schedule.TurnoManana, day.Turno.Turno)
}

func TestGroupByDay_SplitDayWithOnlyOneSessionIncomplete(t *testing.T) {
	events := eventsAt([2]int{9, 0}, [2]int{14, 0})

	days := GroupByDay(events, splitSchedule(), time.UTC)

	require.Len(t, days, 1)
	assert.False(t, days[0].Complete, "a jornada partida expects four events")
}

func TestGroupByDay_Lateness(t *testing.T) {
	tests := []struct {
		name  string
		entry [2]int
		late  bool
	}{
		{"on time", [2]int{9, 0}, false},
		{"inside tolerance", [2]int{9, 10}, false},
		{"one minute past tolerance", [2]int{9, 11}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := eventsAt(tt.entry, [2]int{18, 0})
			days := GroupByDay(events, simpleSchedule(), time.UTC)
			require.Len(t, days, 1)
			assert.Equal(t, tt.late, days[0].Late)
		})
	}
}

func TestGroupByDay_EarlyDeparture(t *testing.T) {
	events := eventsAt([2]int{9, 0}, [2]int{17, 0})

	days := GroupByDay(events, simpleSchedule(), time.UTC)

	require.Len(t, days, 1)
	assert.True(t, days[0].EarlyDeparture)
}

func TestGroupByDay_ShortSessionDoesNotFlagEarlyDeparture(t *testing.T) {
	// A 5-minute mis-click session at midday must not mark the day as an
	// early departure
	events := eventsAt([2]int{9, 0}, [2]int{9, 5})

	days := GroupByDay(events, simpleSchedule(), time.UTC)

	require.Len(t, days, 1)
	assert.False(t, days[0].EarlyDeparture)
}

func TestGroupByDay_FlexibleDayHasNoFlags(t *testing.T) {
	sched := simpleSchedule()
	sched.FlexibleSchedule = true
	events := eventsAt([2]int{11, 30}, [2]int{13, 0})

	days := GroupByDay(events, sched, time.UTC)

	require.Len(t, days, 1)
	assert.False(t, days[0].Late)
	assert.False(t, days[0].EarlyDeparture)
	require.NotNil(t, days[0].Turno)
	assert.Equal(t, schedule.TurnoFlexible, days[0].Turno.Turno)
}

func TestGroupByDay_OddEventsPairFloorHalf(t *testing.T) {
	events := eventsAt([2]int{9, 0}, [2]int{14, 0}, [2]int{15, 0})

	days := GroupByDay(events, splitSchedule(), time.UTC)

	require.Len(t, days, 1)
	day := days[0]
	assert.Len(t, day.Sessions, 1, "the dangling entrada pairs with nothing")
	assert.Equal(t, 300, day.TotalMinutes)
	assert.False(t, day.Complete)
}

func TestGroupByDay_DayOffCarriesNoFlags(t *testing.T) {
	sched := simpleSchedule()
	sched.Overrides[time.Monday] = &schedule.DayOverride{DayOff: true}
	events := eventsAt([2]int{9, 30}, [2]int{12, 0})

	days := GroupByDay(events, sched, time.UTC)

	require.Len(t, days, 1)
	day := days[0]
	assert.True(t, day.DayOff)
	assert.False(t, day.Late)
	assert.Nil(t, day.Turno)
	assert.Equal(t, 150, day.TotalMinutes, "worked minutes still accumulate")
}

func TestGroupByDay_MostRecentFirst(t *testing.T) {
	events := []Fichaje{
		{UserID: "u1", Type: TypeEntrada, Timestamp: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
		{UserID: "u1", Type: TypeSalida, Timestamp: time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)},
		{UserID: "u1", Type: TypeEntrada, Timestamp: time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)},
		{UserID: "u1", Type: TypeSalida, Timestamp: time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC)},
	}

	days := GroupByDay(events, simpleSchedule(), time.UTC)

	require.Len(t, days, 2)
	assert.Equal(t, "2026-03-04", days[0].Date)
	assert.Equal(t, "2026-03-02", days[1].Date)
}

func TestGroupByDay_EventsSplitAcrossMidnightLocalTime(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	// 23:30 UTC on March 2nd is 00:30 March 3rd in Madrid
	events := []Fichaje{
		{UserID: "u1", Type: TypeEntrada, Timestamp: time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC)},
	}

	days := GroupByDay(events, simpleSchedule(), madrid)

	require.Len(t, days, 1)
	assert.Equal(t, "2026-03-03", days[0].Date)
}
