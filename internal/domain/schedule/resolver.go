package schedule

import "time"

// ResolveForDate resolves the effective schedule of a department for one
// calendar date. It returns nil when the weekday is marked as a day off, the
// base fields verbatim when no override exists, and a field-by-field merge
// when a partial override exists. The input schedule is never mutated.
//
// Callers that have no DepartmentSchedule at all must substitute
// DefaultSchedule before calling; a nil schedule here resolves to nil.
func ResolveForDate(s *DepartmentSchedule, date time.Time) *DaySchedule {
	if s == nil {
		return nil
	}

	ov := s.Overrides[date.Weekday()]
	if ov == nil {
		return &DaySchedule{
			HoraEntrada:       s.HoraEntrada,
			HoraSalida:        s.HoraSalida,
			HoraEntradaTarde:  s.HoraEntradaTarde,
			HoraSalidaManana:  s.HoraSalidaManana,
			ToleranciaMinutos: s.ToleranciaMinutos,
			FlexibleSchedule:  s.FlexibleSchedule,
		}
	}

	if ov.DayOff {
		return nil
	}

	day := &DaySchedule{
		HoraEntrada:       s.HoraEntrada,
		HoraSalida:        s.HoraSalida,
		HoraEntradaTarde:  s.HoraEntradaTarde,
		HoraSalidaManana:  s.HoraSalidaManana,
		ToleranciaMinutos: s.ToleranciaMinutos,
		FlexibleSchedule:  s.FlexibleSchedule,
		IsOverride:        true,
	}

	if ov.HoraEntrada != nil {
		day.HoraEntrada = *ov.HoraEntrada
	}
	if ov.HoraSalida != nil {
		day.HoraSalida = *ov.HoraSalida
	}
	if ov.HoraEntradaTarde != nil {
		day.HoraEntradaTarde = ov.HoraEntradaTarde
	}
	if ov.HoraSalidaManana != nil {
		day.HoraSalidaManana = ov.HoraSalidaManana
	}
	if ov.ToleranciaMinutos != nil {
		day.ToleranciaMinutos = *ov.ToleranciaMinutos
	}
	if ov.FlexibleSchedule != nil {
		day.FlexibleSchedule = *ov.FlexibleSchedule
	}

	return day
}
