package fichaje

import (
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/schedule"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/validator"
)

type CreateFichajeRequest struct {
	Type string `json:"type"`
}

func (r *CreateFichajeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: ENTRADA, SALIDA",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type FichajeResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Department string `json:"department"`
	Type       Type   `json:"type"`
	Timestamp  string `json:"timestamp"`
}

type StatusResponse struct {
	HasActiveEntry bool             `json:"has_active_entry"`
	CurrentFichaje *FichajeResponse `json:"current_fichaje,omitempty"`
	ExpectedType   Type             `json:"expected_type"`
}

type CreateFichajeResponse struct {
	Fichaje       FichajeResponse     `json:"fichaje"`
	Status        StatusResponse      `json:"status"`
	Turno         *schedule.TurnoInfo `json:"turno,omitempty"`
	AssignedShift *AssignedShift      `json:"assigned_shift,omitempty"`
}

// AssignedShift is the annotation produced by the shift matcher for
// departments using a named-shift catalogue.
type AssignedShift struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	HoraEntrada string `json:"hora_entrada"`
	HoraSalida  string `json:"hora_salida"`
}

type MyFichajesFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *MyFichajesFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
