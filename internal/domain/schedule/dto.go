package schedule

import (
	"fmt"

	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/validator"
)

// ========================================
// DEPARTMENT SCHEDULE DTOs
// ========================================

type UpsertScheduleRequest struct {
	Department        string                        `json:"-"`
	HoraEntrada       string                        `json:"hora_entrada"`
	HoraSalida        string                        `json:"hora_salida"`
	HoraEntradaTarde  *string                       `json:"hora_entrada_tarde,omitempty"`
	HoraSalidaManana  *string                       `json:"hora_salida_manana,omitempty"`
	ToleranciaMinutos int                           `json:"tolerancia_minutos"`
	FlexibleSchedule  bool                          `json:"flexible_schedule"`
	Overrides         map[string]DayOverrideRequest `json:"overrides,omitempty"`
}

// DayOverrideRequest is the wire shape of one weekday override, keyed by the
// lowercase Spanish weekday name. DayOff wins over every partial field.
type DayOverrideRequest struct {
	DayOff            bool    `json:"day_off"`
	HoraEntrada       *string `json:"hora_entrada,omitempty"`
	HoraSalida        *string `json:"hora_salida,omitempty"`
	HoraEntradaTarde  *string `json:"hora_entrada_tarde,omitempty"`
	HoraSalidaManana  *string `json:"hora_salida_manana,omitempty"`
	ToleranciaMinutos *int    `json:"tolerancia_minutos,omitempty"`
	FlexibleSchedule  *bool   `json:"flexible_schedule,omitempty"`
}

func validateHora(errs validator.ValidationErrors, field, value string) validator.ValidationErrors {
	if !validator.IsValidHora(value) {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be a valid HH:mm time", field),
		})
	}
	return errs
}

func (r *UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	errs = validateHora(errs, "hora_entrada", r.HoraEntrada)
	errs = validateHora(errs, "hora_salida", r.HoraSalida)

	if (r.HoraEntradaTarde == nil) != (r.HoraSalidaManana == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "hora_entrada_tarde",
			Message: "hora_entrada_tarde and hora_salida_manana must be set together for a split shift",
		})
	}
	if r.HoraEntradaTarde != nil {
		errs = validateHora(errs, "hora_entrada_tarde", *r.HoraEntradaTarde)
	}
	if r.HoraSalidaManana != nil {
		errs = validateHora(errs, "hora_salida_manana", *r.HoraSalidaManana)
	}

	if r.ToleranciaMinutos < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerancia_minutos",
			Message: "tolerancia_minutos must not be negative",
		})
	}

	for dayName, ov := range r.Overrides {
		if !isWeekdayName(dayName) {
			errs = append(errs, validator.ValidationError{
				Field:   "overrides." + dayName,
				Message: "unknown weekday name",
			})
			continue
		}
		if ov.DayOff {
			continue
		}
		if ov.HoraEntrada != nil {
			errs = validateHora(errs, "overrides."+dayName+".hora_entrada", *ov.HoraEntrada)
		}
		if ov.HoraSalida != nil {
			errs = validateHora(errs, "overrides."+dayName+".hora_salida", *ov.HoraSalida)
		}
		if ov.HoraEntradaTarde != nil {
			errs = validateHora(errs, "overrides."+dayName+".hora_entrada_tarde", *ov.HoraEntradaTarde)
		}
		if ov.HoraSalidaManana != nil {
			errs = validateHora(errs, "overrides."+dayName+".hora_salida_manana", *ov.HoraSalidaManana)
		}
		if ov.ToleranciaMinutos != nil && *ov.ToleranciaMinutos < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "overrides." + dayName + ".tolerancia_minutos",
				Message: "tolerancia_minutos must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity converts the request into a DepartmentSchedule with the override
// map decoded into weekday slots.
func (r *UpsertScheduleRequest) ToEntity() DepartmentSchedule {
	s := DepartmentSchedule{
		Department:        r.Department,
		HoraEntrada:       r.HoraEntrada,
		HoraSalida:        r.HoraSalida,
		HoraEntradaTarde:  r.HoraEntradaTarde,
		HoraSalidaManana:  r.HoraSalidaManana,
		ToleranciaMinutos: r.ToleranciaMinutos,
		FlexibleSchedule:  r.FlexibleSchedule,
	}
	for dayName, ov := range r.Overrides {
		wd, ok := weekdayByName(dayName)
		if !ok {
			continue
		}
		o := DayOverride{
			DayOff:            ov.DayOff,
			HoraEntrada:       ov.HoraEntrada,
			HoraSalida:        ov.HoraSalida,
			HoraEntradaTarde:  ov.HoraEntradaTarde,
			HoraSalidaManana:  ov.HoraSalidaManana,
			ToleranciaMinutos: ov.ToleranciaMinutos,
			FlexibleSchedule:  ov.FlexibleSchedule,
		}
		s.Overrides[wd] = &o
	}
	return s
}

type ScheduleResponse struct {
	Department        string                        `json:"department"`
	HoraEntrada       string                        `json:"hora_entrada"`
	HoraSalida        string                        `json:"hora_salida"`
	HoraEntradaTarde  *string                       `json:"hora_entrada_tarde,omitempty"`
	HoraSalidaManana  *string                       `json:"hora_salida_manana,omitempty"`
	ToleranciaMinutos int                           `json:"tolerancia_minutos"`
	FlexibleSchedule  bool                          `json:"flexible_schedule"`
	Overrides         map[string]DayOverrideRequest `json:"overrides,omitempty"`
}

type ResolvedDayResponse struct {
	Date     string       `json:"date"`
	DayOff   bool         `json:"day_off"`
	Schedule *DaySchedule `json:"schedule,omitempty"`
}

// ========================================
// NAMED SHIFT DTOs
// ========================================

type CreateShiftRequest struct {
	Department        string   `json:"department"`
	Name              string   `json:"name"`
	HoraEntrada       string   `json:"hora_entrada"`
	HoraSalida        string   `json:"hora_salida"`
	ToleranciaMinutos int      `json:"tolerancia_minutos"`
	ActiveDays        []string `json:"active_days"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	errs = validateHora(errs, "hora_entrada", r.HoraEntrada)
	errs = validateHora(errs, "hora_salida", r.HoraSalida)

	if r.ToleranciaMinutos < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerancia_minutos",
			Message: "tolerancia_minutos must not be negative",
		})
	}

	if len(r.ActiveDays) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "active_days",
			Message: "at least one active day is required",
		})
	}
	for _, d := range r.ActiveDays {
		if !isWeekdayName(d) {
			errs = append(errs, validator.ValidationError{
				Field:   "active_days",
				Message: fmt.Sprintf("unknown weekday name %q", d),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID                string   `json:"id"`
	Department        string   `json:"department"`
	Name              string   `json:"name"`
	HoraEntrada       string   `json:"hora_entrada"`
	HoraSalida        string   `json:"hora_salida"`
	ToleranciaMinutos int      `json:"tolerancia_minutos"`
	ActiveDays        []string `json:"active_days"`
}

func isWeekdayName(name string) bool {
	_, ok := weekdayByName(name)
	return ok
}

func weekdayByName(name string) (int, bool) {
	for wd, n := range WeekdayNames {
		if n == name {
			return int(wd), true
		}
	}
	return 0, false
}
