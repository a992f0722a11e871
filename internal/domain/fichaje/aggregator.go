package fichaje

import (
	"math"
	"sort"
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/schedule"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/timeutil"
)

// noiseSessionMinutes suppresses the early-departure flag for sessions short
// enough to be a mis-click rather than a real exit.
const noiseSessionMinutes = 10

// Session is one paired ENTRADA→SALIDA interval inside a day.
type Session struct {
	Entrada *Fichaje `json:"entrada"`
	Salida  *Fichaje `json:"salida,omitempty"`
	Minutes int      `json:"minutes"`
}

// SessionDay is the derived per-date aggregation of a user's clock events.
// Recomputed on every query, never persisted.
type SessionDay struct {
	Date           string              `json:"date"`
	Events         []Fichaje           `json:"events"`
	Sessions       []Session           `json:"sessions"`
	TotalMinutes   int                 `json:"total_minutes"`
	TotalHours     float64             `json:"total_hours"`
	Complete       bool                `json:"complete"`
	Late           bool                `json:"late"`
	EarlyDeparture bool                `json:"early_departure"`
	DayOff         bool                `json:"day_off"`
	Turno          *schedule.TurnoInfo `json:"turno,omitempty"`
}

// GroupByDay pairs a user's clock events into sessions per local calendar
// date and classifies each day against its resolved schedule. Days come back
// most-recent-first. A day whose schedule resolves to nil (day off) carries
// no lateness or early-departure flags; neither does a flexible day.
func GroupByDay(events []Fichaje, sched *schedule.DepartmentSchedule, loc *time.Location) []SessionDay {
	return GroupByDayPerDepartment(events, func(string) *schedule.DepartmentSchedule {
		return sched
	}, loc)
}

// GroupByDayPerDepartment is GroupByDay with the schedule resolved from the
// department stamped on each day's first event. Events keep the department
// they were created under, so a transferred user's history stays classified
// against the schedule that applied at the time.
func GroupByDayPerDepartment(events []Fichaje, schedFor func(department string) *schedule.DepartmentSchedule, loc *time.Location) []SessionDay {
	byDate := make(map[string][]Fichaje)
	for _, ev := range events {
		key := timeutil.DateKey(ev.Timestamp, loc)
		byDate[key] = append(byDate[key], ev)
	}

	days := make([]SessionDay, 0, len(byDate))
	for date, dayEvents := range byDate {
		sort.Slice(dayEvents, func(i, j int) bool {
			return dayEvents[i].Timestamp.Before(dayEvents[j].Timestamp)
		})

		dayDate, _ := time.ParseInLocation("2006-01-02", date, loc)
		sched := schedFor(dayEvents[0].Department)
		day := buildDay(date, dayEvents, schedule.ResolveForDate(sched, dayDate), loc)
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date > days[j].Date
	})
	return days
}

func buildDay(date string, events []Fichaje, resolved *schedule.DaySchedule, loc *time.Location) SessionDay {
	day := SessionDay{
		Date:   date,
		Events: events,
		DayOff: resolved == nil,
	}

	// Positional pairing: event[0]+event[1], event[2]+event[3], ...
	for i := 0; i+1 < len(events); i += 2 {
		entrada := &events[i]
		salida := &events[i+1]
		if entrada.Type != TypeEntrada || salida.Type != TypeSalida {
			continue
		}
		minutes := int(salida.Timestamp.Sub(entrada.Timestamp).Minutes())
		day.Sessions = append(day.Sessions, Session{
			Entrada: entrada,
			Salida:  salida,
			Minutes: minutes,
		})
		day.TotalMinutes += minutes
	}
	day.TotalHours = math.Round(float64(day.TotalMinutes)/60*100) / 100

	expectedEvents := 2
	if resolved != nil && resolved.IsSplit() {
		expectedEvents = 4
	}
	day.Complete = len(events)%2 == 0 && len(events) >= expectedEvents

	if resolved == nil {
		return day
	}

	if first := firstEntrada(events); first != nil {
		day.Turno = schedule.DetectTurno(resolved, first.Timestamp, loc)
	}

	if resolved.FlexibleSchedule {
		return day
	}

	for _, ev := range events {
		if ev.Type != TypeEntrada {
			continue
		}
		info := schedule.DetectTurno(resolved, ev.Timestamp, loc)
		threshold := schedule.MinutosDe(info.ExpectedEntry) + resolved.ToleranciaMinutos
		if timeutil.MinutesOfDay(ev.Timestamp, loc) > threshold {
			day.Late = true
		}
	}

	for _, s := range day.Sessions {
		if s.Salida == nil || s.Minutes < noiseSessionMinutes {
			continue
		}
		info := schedule.DetectTurno(resolved, s.Salida.Timestamp, loc)
		threshold := schedule.MinutosDe(info.ExpectedExit) - resolved.ToleranciaMinutos
		if timeutil.MinutesOfDay(s.Salida.Timestamp, loc) < threshold {
			day.EarlyDeparture = true
		}
	}

	return day
}

func firstEntrada(events []Fichaje) *Fichaje {
	for i := range events {
		if events[i].Type == TypeEntrada {
			return &events[i]
		}
	}
	return nil
}
