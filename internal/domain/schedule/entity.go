package schedule

import "time"

// DepartmentSchedule is the base working schedule of a department plus
// optional per-weekday overrides. Times are wall-clock HH:mm strings.
type DepartmentSchedule struct {
	Department        string
	HoraEntrada       string
	HoraSalida        string
	HoraEntradaTarde  *string // split shift: afternoon entry
	HoraSalidaManana  *string // split shift: morning exit
	ToleranciaMinutos int
	FlexibleSchedule  bool
	Overrides         WeekOverrides
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// WeekOverrides holds one optional override per weekday, indexed by
// time.Weekday (0=Sunday .. 6=Saturday). A nil slot means the base schedule
// applies untouched.
type WeekOverrides [7]*DayOverride

// DayOverride is the tagged per-weekday variant: either a day-off marker or a
// partial override where every nil field falls back to the base schedule.
type DayOverride struct {
	DayOff            bool
	HoraEntrada       *string
	HoraSalida        *string
	HoraEntradaTarde  *string
	HoraSalidaManana  *string
	ToleranciaMinutos *int
	FlexibleSchedule  *bool
}

// DaySchedule is the fully-resolved schedule for one calendar date. All
// required fields are populated; a day off resolves to nil, not to a partial
// DaySchedule.
type DaySchedule struct {
	HoraEntrada       string
	HoraSalida        string
	HoraEntradaTarde  *string
	HoraSalidaManana  *string
	ToleranciaMinutos int
	FlexibleSchedule  bool
	IsOverride        bool
}

// IsSplit reports whether the day has a jornada partida (four time boundaries).
func (d *DaySchedule) IsSplit() bool {
	return d.HoraEntradaTarde != nil && d.HoraSalidaManana != nil
}

// NamedShift is an independently defined shift from the department's shift
// catalogue. Many shifts may be active on the same weekday; MatchShift
// disambiguates by entry-time proximity.
type NamedShift struct {
	ID                string
	Department        string
	Name              string
	HoraEntrada       string
	HoraSalida        string
	ToleranciaMinutos int
	ActiveDays        []string // lowercase Spanish weekday names: lunes..domingo
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DefaultSchedule is the controller-layer fallback applied when a department
// has no schedule configured at all.
func DefaultSchedule(department string) *DepartmentSchedule {
	return &DepartmentSchedule{
		Department:        department,
		HoraEntrada:       "09:00",
		HoraSalida:        "18:00",
		ToleranciaMinutos: 10,
	}
}
