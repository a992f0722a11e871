package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrOverlappingLeave             = errors.New("an overlapping leave request already exists")
	ErrCrossDepartment              = errors.New("managers can only resolve leave requests within their department")
)
