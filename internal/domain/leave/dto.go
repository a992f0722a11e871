package leave

import (
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	Type      string  `json:"type"`
	StartDate string  `json:"start_date"` // YYYY-MM-DD
	EndDate   string  `json:"end_date"`   // YYYY-MM-DD
	Reason    *string `json:"reason,omitempty"`

	ParsedStart time.Time `json:"-"`
	ParsedEnd   time.Time `json:"-"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, LeaveTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: vacaciones, baja_medica, asunto_personal, otro",
		})
	}

	start, validStart := validator.IsValidDate(r.StartDate)
	if !validStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, validEnd := validator.IsValidDate(r.EndDate)
	if !validEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if validStart && validEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	r.ParsedStart = start
	r.ParsedEnd = end

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Type      string  `json:"type"`
	Label     string  `json:"label"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Status    Status  `json:"status"`
	Reason    *string `json:"reason,omitempty"`
}
