package schedule

import "context"

// ScheduleRepository stores one DepartmentSchedule per department.
type ScheduleRepository interface {
	Upsert(ctx context.Context, s DepartmentSchedule) (DepartmentSchedule, error)
	GetByDepartment(ctx context.Context, department string) (DepartmentSchedule, error)
}

// ShiftRepository stores the independent named-shift catalogue.
type ShiftRepository interface {
	Create(ctx context.Context, s NamedShift) (NamedShift, error)
	ListByDepartment(ctx context.Context, department string) ([]NamedShift, error)
	Delete(ctx context.Context, id string) error
}
