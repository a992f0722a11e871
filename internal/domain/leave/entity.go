package leave

import "time"

type LeaveType string

const (
	TypeVacaciones LeaveType = "vacaciones"
	TypeBajaMedica LeaveType = "baja_medica"
	TypePersonal   LeaveType = "asunto_personal"
	TypeOtro       LeaveType = "otro"
)

var LeaveTypeValues = []string{
	string(TypeVacaciones),
	string(TypeBajaMedica),
	string(TypePersonal),
	string(TypeOtro),
}

// Label returns the human-readable report label for the leave type.
func (t LeaveType) Label() string {
	switch t {
	case TypeVacaciones:
		return "Vacaciones"
	case TypeBajaMedica:
		return "Baja médica"
	case TypePersonal:
		return "Asunto personal"
	default:
		return "Ausencia justificada"
	}
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveRequest is an absence interval. The attendance report treats approved
// and pending requests as covering their days; rejected ones are ignored.
type LeaveRequest struct {
	ID        string
	UserID    string
	Type      LeaveType
	StartDate time.Time // inclusive, date precision
	EndDate   time.Time // inclusive, date precision
	Status    Status
	Reason    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers reports whether the request spans the given calendar date. Dates are
// compared as calendar keys, not instants: leave bounds are stored as UTC
// midnights while report days arrive as midnights in the report locale, and an
// instant comparison would shift coverage by a day east of UTC.
func (l *LeaveRequest) Covers(date time.Time) bool {
	d := date.Format("2006-01-02")
	return d >= l.StartDate.Format("2006-01-02") && d <= l.EndDate.Format("2006-01-02")
}
