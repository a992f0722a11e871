package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("department schedule not found")
	ErrShiftNotFound    = errors.New("named shift not found")
	ErrShiftNameExists  = errors.New("a shift with this name already exists for the department")
)
