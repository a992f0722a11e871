package adjustment

import "errors"

var (
	ErrAdjustmentNotFound = errors.New("adjustment request not found")
	ErrNotFichajeOwner    = errors.New("fichaje does not belong to the requesting user")
	ErrPendingExists      = errors.New("a pending adjustment already exists for this fichaje")
	ErrAlreadyProcessed   = errors.New("adjustment request has already been approved or rejected")
	ErrCrossDepartment    = errors.New("managers can only resolve adjustments within their department")
)
