package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/schedule"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/user"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type ScheduleServiceImpl struct {
	schedule.ScheduleRepository
	schedule.ShiftRepository
	loc *time.Location
}

func NewScheduleService(
	scheduleRepository schedule.ScheduleRepository,
	shiftRepository schedule.ShiftRepository,
	loc *time.Location,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		ScheduleRepository: scheduleRepository,
		ShiftRepository:    shiftRepository,
		loc:                loc,
	}
}

func actorFromContext(ctx context.Context) (u user.User, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	u.ID, _ = claims["user_id"].(string)
	if u.ID == "" {
		return user.User{}, fmt.Errorf("user_id claim is missing or invalid")
	}
	role, _ := claims["role"].(string)
	u.Role = user.Role(role)
	u.Department, _ = claims["department"].(string)
	u.Name, _ = claims["name"].(string)
	u.Email, _ = claims["email"].(string)
	return u, nil
}

// Upsert implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Upsert(ctx context.Context, req schedule.UpsertScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	if !actor.CanResolveFor(req.Department) {
		return schedule.ScheduleResponse{}, user.ErrManagerAccessRequired
	}

	saved, err := s.ScheduleRepository.Upsert(ctx, req.ToEntity())
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to upsert schedule: %w", err)
	}
	return toScheduleResponse(saved), nil
}

// GetByDepartment implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetByDepartment(ctx context.Context, department string) (schedule.ScheduleResponse, error) {
	sched, err := s.ScheduleRepository.GetByDepartment(ctx, department)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return toScheduleResponse(sched), nil
}

// ResolveDay implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ResolveDay(ctx context.Context, department, date string) (schedule.ResolvedDayResponse, error) {
	if _, valid := validator.IsValidDate(date); !valid {
		return schedule.ResolvedDayResponse{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}
	day, _ := time.ParseInLocation("2006-01-02", date, s.loc)

	sched, err := s.ScheduleRepository.GetByDepartment(ctx, department)
	if err != nil {
		return schedule.ResolvedDayResponse{}, err
	}

	resolved := schedule.ResolveForDate(&sched, day)
	return schedule.ResolvedDayResponse{
		Date:     date,
		DayOff:   resolved == nil,
		Schedule: resolved,
	}, nil
}

// CreateShift implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CreateShift(ctx context.Context, req schedule.CreateShiftRequest) (schedule.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftResponse{}, err
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return schedule.ShiftResponse{}, err
	}
	if !actor.CanResolveFor(req.Department) {
		return schedule.ShiftResponse{}, user.ErrManagerAccessRequired
	}

	created, err := s.ShiftRepository.Create(ctx, schedule.NamedShift{
		Department:        req.Department,
		Name:              req.Name,
		HoraEntrada:       req.HoraEntrada,
		HoraSalida:        req.HoraSalida,
		ToleranciaMinutos: req.ToleranciaMinutos,
		ActiveDays:        req.ActiveDays,
	})
	if err != nil {
		return schedule.ShiftResponse{}, err
	}
	return toShiftResponse(created), nil
}

// ListShifts implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListShifts(ctx context.Context, department string) ([]schedule.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.ListByDepartment(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	resp := make([]schedule.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		resp = append(resp, toShiftResponse(sh))
	}
	return resp, nil
}

// DeleteShift implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) DeleteShift(ctx context.Context, id string) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return err
	}
	if !actor.IsManager() {
		return user.ErrManagerAccessRequired
	}
	return s.ShiftRepository.Delete(ctx, id)
}

func toScheduleResponse(s schedule.DepartmentSchedule) schedule.ScheduleResponse {
	resp := schedule.ScheduleResponse{
		Department:        s.Department,
		HoraEntrada:       s.HoraEntrada,
		HoraSalida:        s.HoraSalida,
		HoraEntradaTarde:  s.HoraEntradaTarde,
		HoraSalidaManana:  s.HoraSalidaManana,
		ToleranciaMinutos: s.ToleranciaMinutos,
		FlexibleSchedule:  s.FlexibleSchedule,
	}
	for wd, ov := range s.Overrides {
		if ov == nil {
			continue
		}
		if resp.Overrides == nil {
			resp.Overrides = make(map[string]schedule.DayOverrideRequest, 7)
		}
		resp.Overrides[schedule.WeekdayNames[time.Weekday(wd)]] = schedule.DayOverrideRequest{
			DayOff:            ov.DayOff,
			HoraEntrada:       ov.HoraEntrada,
			HoraSalida:        ov.HoraSalida,
			HoraEntradaTarde:  ov.HoraEntradaTarde,
			HoraSalidaManana:  ov.HoraSalidaManana,
			ToleranciaMinutos: ov.ToleranciaMinutos,
			FlexibleSchedule:  ov.FlexibleSchedule,
		}
	}
	return resp
}

func toShiftResponse(sh schedule.NamedShift) schedule.ShiftResponse {
	return schedule.ShiftResponse{
		ID:                sh.ID,
		Department:        sh.Department,
		Name:              sh.Name,
		HoraEntrada:       sh.HoraEntrada,
		HoraSalida:        sh.HoraSalida,
		ToleranciaMinutos: sh.ToleranciaMinutos,
		ActiveDays:        sh.ActiveDays,
	}
}
