package schedule

import "time"

// WeekdayNames maps time.Weekday to the lowercase Spanish names used in
// NamedShift.ActiveDays.
var WeekdayNames = map[time.Weekday]string{
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miércoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sábado",
	time.Sunday:    "domingo",
}

// MatchShift picks the named shift whose entry time is closest to the
// observed clock-in. Shifts not active on the event's weekday are ignored.
// A shift within its own tolerance wins over a closer-but-out-of-tolerance
// one; when no shift is within tolerance the globally closest candidate is
// returned anyway, so an event is never left unassigned while at least one
// shift is active that day. No active shifts yields nil.
func MatchShift(shifts []NamedShift, ts time.Time, loc *time.Location) *NamedShift {
	local := ts.In(loc)
	dayName := WeekdayNames[local.Weekday()]
	eventMinutes := local.Hour()*60 + local.Minute()

	var withinTolerance *NamedShift
	withinDiff := 0
	var closest *NamedShift
	closestDiff := 0

	for i := range shifts {
		s := &shifts[i]
		if !containsDay(s.ActiveDays, dayName) {
			continue
		}

		diff := eventMinutes - MinutosDe(s.HoraEntrada)
		if diff < 0 {
			diff = -diff
		}

		if closest == nil || diff < closestDiff {
			closest = s
			closestDiff = diff
		}
		if diff <= s.ToleranciaMinutos && (withinTolerance == nil || diff < withinDiff) {
			withinTolerance = s
			withinDiff = diff
		}
	}

	if withinTolerance != nil {
		return withinTolerance
	}
	return closest
}

func containsDay(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
