package schedule

import "context"

type ScheduleService interface {
	Upsert(ctx context.Context, req UpsertScheduleRequest) (ScheduleResponse, error)
	GetByDepartment(ctx context.Context, department string) (ScheduleResponse, error)

	// ResolveDay returns the effective schedule of a department for one
	// calendar date, with overrides applied.
	ResolveDay(ctx context.Context, department, date string) (ResolvedDayResponse, error)

	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	ListShifts(ctx context.Context, department string) ([]ShiftResponse, error)
	DeleteShift(ctx context.Context, id string) error
}
