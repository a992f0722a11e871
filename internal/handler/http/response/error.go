package response

import (
	"errors"
	"net/http"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/adjustment"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/auth"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/fichaje"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/leave"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/schedule"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/user"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenMissing):
		Unauthorized(w, "Refresh token cookie not found")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Access control
	case errors.Is(err, user.ErrAdminPrivilegeRequired),
		errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())

	// Fichaje domain errors. The sequencing messages are user-facing and
	// returned verbatim.
	case errors.Is(err, fichaje.ErrFicharSalidaPrimero),
		errors.Is(err, fichaje.ErrFicharEntradaPrimero):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, fichaje.ErrMissingDepartment):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, fichaje.ErrFichajeNotFound):
		NotFound(w, "Fichaje not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Department schedule not found")
	case errors.Is(err, schedule.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, schedule.ErrShiftNameExists):
		Conflict(w, "A shift with this name already exists")

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrAdjustmentNotFound):
		NotFound(w, "Adjustment request not found")
	case errors.Is(err, adjustment.ErrNotFichajeOwner):
		Forbidden(w, err.Error())
	case errors.Is(err, adjustment.ErrCrossDepartment):
		Forbidden(w, err.Error())
	case errors.Is(err, adjustment.ErrPendingExists):
		Conflict(w, err.Error())
	case errors.Is(err, adjustment.ErrAlreadyProcessed):
		Conflict(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrCrossDepartment):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
