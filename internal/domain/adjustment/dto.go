package adjustment

import (
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/validator"
)

const minReasonLength = 10

type CreateAdjustmentRequest struct {
	FichajeID          string `json:"fichaje_id"`
	RequestedTimestamp string `json:"requested_timestamp"` // RFC3339
	Reason             string `json:"reason"`

	// Parsed during Validate
	ParsedTimestamp time.Time `json:"-"`
}

func (r *CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FichajeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "fichaje_id",
			Message: "fichaje_id is required",
		})
	}

	ts, valid := validator.IsValidDateTime(r.RequestedTimestamp)
	if !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_timestamp",
			Message: "requested_timestamp must be an ISO8601 timestamp",
		})
	}
	r.ParsedTimestamp = ts

	if len([]rune(r.Reason)) < minReasonLength {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must be at least 10 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectAdjustmentRequest struct {
	ID              string  `json:"-"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

type AdjustmentResponse struct {
	ID                 string  `json:"id"`
	FichajeID          string  `json:"fichaje_id"`
	UserID             string  `json:"user_id"`
	UserName           *string `json:"user_name,omitempty"`
	Department         *string `json:"department,omitempty"`
	OriginalTimestamp  string  `json:"original_timestamp"`
	RequestedTimestamp string  `json:"requested_timestamp"`
	Reason             string  `json:"reason"`
	Status             Status  `json:"status"`
	ManagerID          *string `json:"manager_id,omitempty"`
	RejectionReason    *string `json:"rejection_reason,omitempty"`
	ResolvedAt         *string `json:"resolved_at,omitempty"`
	CreatedAt          string  `json:"created_at"`
}
