package report

import (
	"math"
	"strings"
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/fichaje"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/leave"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/schedule"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/timeutil"
)

// Day statuses rendered in the report.
const (
	StatusWeekend = "Fin de semana"
	StatusWorked  = "Trabajado"
	StatusAbsence = "Ausencia"
	StatusDayOff  = "Descanso"
	StatusFuture  = ""
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// MonthName returns the Spanish name of a 1-based month.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// DayRow is one calendar day of the monthly report.
type DayRow struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	Weekday    string  `json:"weekday"`
	Status     string  `json:"status"`
	FirstEntry string  `json:"first_entry,omitempty"`
	LastExit   string  `json:"last_exit,omitempty"`
	Hours      float64 `json:"hours"`
	Incidents  string  `json:"incidents,omitempty"`
}

// MonthlyReport is the per-day report plus running totals for one user/month.
type MonthlyReport struct {
	UserName     string   `json:"user_name"`
	Month        int      `json:"month"`
	Year         int      `json:"year"`
	Rows         []DayRow `json:"rows"`
	DaysWorked   int      `json:"days_worked"`
	VacationDays int      `json:"vacation_days"`
	AbsentDays   int      `json:"absent_days"`
	LateArrivals int      `json:"late_arrivals"`
	TotalHours   float64  `json:"total_hours"`
}

// BuildMonthly composes grouped session days with leave records into one row
// per calendar day of the month. Classification order per day: weekend with
// no activity, future date, covered leave (more specific label wins), worked
// day, day off from a schedule override, unexplained absence.
func BuildMonthly(
	userName string,
	month, year int,
	days []fichaje.SessionDay,
	leaves []leave.LeaveRequest,
	sched *schedule.DepartmentSchedule,
	now time.Time,
	loc *time.Location,
) MonthlyReport {
	byDate := make(map[string]fichaje.SessionDay, len(days))
	for _, d := range days {
		byDate[d.Date] = d
	}

	today := timeutil.DateKey(now, loc)

	rep := MonthlyReport{
		UserName: userName,
		Month:    month,
		Year:     year,
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	for date := first; date.Month() == time.Month(month); date = date.AddDate(0, 0, 1) {
		key := date.Format("2006-01-02")
		row := DayRow{
			Date:    key,
			Weekday: weekdayNames[date.Weekday()],
		}

		day, worked := byDate[key]
		covering := coveringLeave(leaves, date)

		switch {
		case timeutil.IsWeekend(date, loc) && !worked:
			row.Status = StatusWeekend

		case key > today:
			row.Status = StatusFuture

		case covering != nil:
			row.Status = covering.Type.Label()
			if covering.Type == leave.TypeVacaciones {
				rep.VacationDays++
			}

		case worked && len(day.Events) > 0:
			row.Status = StatusWorked
			row.FirstEntry = day.Events[0].Timestamp.In(loc).Format("15:04")
			if last := lastSalida(day); last != nil {
				row.LastExit = last.Timestamp.In(loc).Format("15:04")
			}
			row.Hours = day.TotalHours
			row.Incidents = incidentSummary(day)
			rep.DaysWorked++
			rep.TotalHours += day.TotalHours
			if day.Late {
				rep.LateArrivals++
			}

		case schedule.ResolveForDate(sched, date) == nil:
			row.Status = StatusDayOff

		default:
			row.Status = StatusAbsence
			rep.AbsentDays++
		}

		rep.Rows = append(rep.Rows, row)
	}

	rep.TotalHours = math.Round(rep.TotalHours*100) / 100
	return rep
}

// coveringLeave picks the approved-or-pending leave covering the date. When
// several cover the same day the more specific label wins: a typed absence
// beats the generic "otro".
func coveringLeave(leaves []leave.LeaveRequest, date time.Time) *leave.LeaveRequest {
	var best *leave.LeaveRequest
	for i := range leaves {
		l := &leaves[i]
		if l.Status == leave.StatusRejected || !l.Covers(date) {
			continue
		}
		if best == nil || specificity(l.Type) > specificity(best.Type) {
			best = l
		}
	}
	return best
}

func specificity(t leave.LeaveType) int {
	switch t {
	case leave.TypeBajaMedica:
		return 3
	case leave.TypeVacaciones:
		return 2
	case leave.TypePersonal:
		return 1
	default:
		return 0
	}
}

func lastSalida(day fichaje.SessionDay) *fichaje.Fichaje {
	for i := len(day.Events) - 1; i >= 0; i-- {
		if day.Events[i].Type == fichaje.TypeSalida {
			return &day.Events[i]
		}
	}
	return nil
}

func incidentSummary(day fichaje.SessionDay) string {
	var parts []string
	if day.Late {
		parts = append(parts, "Retraso")
	}
	if day.EarlyDeparture {
		parts = append(parts, "Salida anticipada")
	}
	if !day.Complete {
		parts = append(parts, "Jornada incompleta")
	}
	return strings.Join(parts, ", ")
}
