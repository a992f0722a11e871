package report

import (
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/validator"
)

type MonthlyReportRequest struct {
	Month  int     `json:"month"`
	Year   int     `json:"year"`
	UserID *string `json:"user_id,omitempty"` // admins only, for other users
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > time.Now().Year()+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
