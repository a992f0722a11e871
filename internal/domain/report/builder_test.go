package report

import (
	"testing"
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/fichaje"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/leave"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// March 2026 starts on a Sunday; the 16th is a Monday.
var reportNow = time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)

func baseSchedule() *schedule.DepartmentSchedule {
	return &schedule.DepartmentSchedule{
		Department:        "ventas",
		HoraEntrada:       "09:00",
		HoraSalida:        "18:00",
		ToleranciaMinutos: 10,
	}
}

func workedDay(date string, entry, exit time.Time, hours float64) fichaje.SessionDay {
	return fichaje.SessionDay{
		Date: date,
		Events: []fichaje.Fichaje{
			{Type: fichaje.TypeEntrada, Timestamp: entry},
			{Type: fichaje.TypeSalida, Timestamp: exit},
		},
		TotalHours: hours,
		Complete:   true,
	}
}

func leaveOn(typ leave.LeaveType, status leave.Status, start, end time.Time) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:        "l1",
		UserID:    "u1",
		Type:      typ,
		StartDate: start,
		EndDate:   end,
		Status:    status,
	}
}

func rowFor(t *testing.T, rep MonthlyReport, date string) DayRow {
	t.Helper()
	for _, r := range rep.Rows {
		if r.Date == date {
			return r
		}
	}
	t.Fatalf("no row for %s", date)
	return DayRow{}
}

func TestBuildMonthly_OneRowPerCalendarDay(t *testing.T) {
	rep := BuildMonthly("Ana García", 3, 2026, nil, nil, baseSchedule(), reportNow, time.UTC)

	require.Len(t, rep.Rows, 31)
	assert.Equal(t, "2026-03-01", rep.Rows[0].Date)
	assert.Equal(t, "Domingo", rep.Rows[0].Weekday)
	assert.Equal(t, "2026-03-31", rep.Rows[30].Date)
}

func TestBuildMonthly_WeekendWithoutActivity(t *testing.T) {
	rep := BuildMonthly("Ana García", 3, 2026, nil, nil, baseSchedule(), reportNow, time.UTC)

	assert.Equal(t, StatusWeekend, rowFor(t, rep, "2026-03-07").Status)
	assert.Equal(t, StatusWeekend, rowFor(t, rep, "2026-03-08").Status)
	assert.Zero(t, rep.AbsentDays, "weekends never count as absences")
}

func TestBuildMonthly_WeekendWithActivityIsWorked(t *testing.T) {
	days := []fichaje.SessionDay{
		workedDay("2026-03-07",
			time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 7, 14, 0, 0, 0, time.UTC), 4.0),
	}

	rep := BuildMonthly("Ana García", 3, 2026, days, nil, baseSchedule(), reportNow, time.UTC)

	row := rowFor(t, rep, "2026-03-07")
	assert.Equal(t, StatusWorked, row.Status)
	assert.Equal(t, "10:00", row.FirstEntry)
	assert.Equal(t, "14:00", row.LastExit)
}

func TestBuildMonthly_FutureDaysStayBlank(t *testing.T) {
	rep := BuildMonthly("Ana García", 3, 2026, nil, nil, baseSchedule(), reportNow, time.UTC)

	row := rowFor(t, rep, "2026-03-17")
	assert.Equal(t, StatusFuture, row.Status)
	assert.Empty(t, row.Incidents)
}

func TestBuildMonthly_WorkedRow(t *testing.T) {
	days := []fichaje.SessionDay{
		{
			Date: "2026-03-10",
			Events: []fichaje.Fichaje{
				{Type: fichaje.TypeEntrada, Timestamp: time.Date(2026, 3, 10, 9, 20, 0, 0, time.UTC)},
				{Type: fichaje.TypeSalida, Timestamp: time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)},
				{Type: fichaje.TypeEntrada, Timestamp: time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC)},
			},
			TotalHours: 8.67,
			Late:       true,
			Complete:   false,
		},
	}

	rep := BuildMonthly("Ana García", 3, 2026, days, nil, baseSchedule(), reportNow, time.UTC)

	row := rowFor(t, rep, "2026-03-10")
	assert.Equal(t, StatusWorked, row.Status)
	assert.Equal(t, "09:20", row.FirstEntry)
	assert.Equal(t, "18:00", row.LastExit, "the dangling entrada is not an exit")
	assert.Equal(t, 8.67, row.Hours)
	assert.Equal(t, "Retraso, Jornada incompleta", row.Incidents)

	assert.Equal(t, 1, rep.DaysWorked)
	assert.Equal(t, 1, rep.LateArrivals)
	assert.Equal(t, 8.67, rep.TotalHours)
}

func TestBuildMonthly_LeaveCoversDay(t *testing.T) {
	leaves := []leave.LeaveRequest{
		leaveOn(leave.TypeVacaciones, leave.StatusApproved,
			time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)),
	}

	rep := BuildMonthly("Ana García", 3, 2026, nil, leaves, baseSchedule(), reportNow, time.UTC)

	assert.Equal(t, "Vacaciones", rowFor(t, rep, "2026-03-09").Status)
	assert.Equal(t, "Vacaciones", rowFor(t, rep, "2026-03-11").Status)
	assert.Equal(t, 3, rep.VacationDays)
	assert.Zero(t, rep.AbsentDays)
}

func TestBuildMonthly_LeaveCoverageInReportTimezone(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	// Leave bounds come from date parsing, so they are UTC midnights. The
	// report iterates midnights in its own locale; the covered day must not
	// shift east of UTC.
	leaves := []leave.LeaveRequest{
		leaveOn(leave.TypeVacaciones, leave.StatusApproved,
			time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)),
	}

	rep := BuildMonthly("Ana García", 3, 2026, nil, leaves, baseSchedule(), reportNow, madrid)

	assert.Equal(t, "Vacaciones", rowFor(t, rep, "2026-03-05").Status)
	assert.Equal(t, StatusAbsence, rowFor(t, rep, "2026-03-06").Status)
	assert.Equal(t, 1, rep.VacationDays)
}

func TestBuildMonthly_MoreSpecificLeaveWins(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	leaves := []leave.LeaveRequest{
		leaveOn(leave.TypeVacaciones, leave.StatusApproved, day, day),
		leaveOn(leave.TypeBajaMedica, leave.StatusApproved, day, day),
		leaveOn(leave.TypeOtro, leave.StatusApproved, day, day),
	}

	rep := BuildMonthly("Ana García", 3, 2026, nil, leaves, baseSchedule(), reportNow, time.UTC)

	assert.Equal(t, "Baja médica", rowFor(t, rep, "2026-03-10").Status)
	assert.Zero(t, rep.VacationDays, "the day counts for the winning type only")
}

func TestBuildMonthly_RejectedLeaveIgnored(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	leaves := []leave.LeaveRequest{
		leaveOn(leave.TypeVacaciones, leave.StatusRejected, day, day),
	}

	rep := BuildMonthly("Ana García", 3, 2026, nil, leaves, baseSchedule(), reportNow, time.UTC)

	assert.Equal(t, StatusAbsence, rowFor(t, rep, "2026-03-10").Status)
	assert.Equal(t, 1, rep.AbsentDays)
}

func TestBuildMonthly_DayOffOverride(t *testing.T) {
	sched := baseSchedule()
	sched.Overrides[time.Friday] = &schedule.DayOverride{DayOff: true}

	rep := BuildMonthly("Ana García", 3, 2026, nil, nil, sched, reportNow, time.UTC)

	assert.Equal(t, StatusDayOff, rowFor(t, rep, "2026-03-06").Status)
	assert.Equal(t, StatusDayOff, rowFor(t, rep, "2026-03-13").Status)
	assert.Equal(t, StatusAbsence, rowFor(t, rep, "2026-03-12").Status)
}

func TestBuildMonthly_NilScheduleMarksWeekdaysAsDayOff(t *testing.T) {
	rep := BuildMonthly("Ana García", 3, 2026, nil, nil, nil, reportNow, time.UTC)

	assert.Equal(t, StatusDayOff, rowFor(t, rep, "2026-03-10").Status)
	assert.Zero(t, rep.AbsentDays)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Enero", MonthName(1))
	assert.Equal(t, "Diciembre", MonthName(12))
	assert.Empty(t, MonthName(0))
	assert.Empty(t, MonthName(13))
}
