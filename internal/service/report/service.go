package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/fichaje"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/leave"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/report"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/schedule"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

type ReportServiceImpl struct {
	fichaje.FichajeRepository
	leave.LeaveRepository
	schedule.ScheduleRepository
	user.UserRepository
	loc *time.Location
}

func NewReportService(
	fichajeRepository fichaje.FichajeRepository,
	leaveRepository leave.LeaveRepository,
	scheduleRepository schedule.ScheduleRepository,
	userRepository user.UserRepository,
	loc *time.Location,
) report.ReportService {
	return &ReportServiceImpl{
		FichajeRepository:  fichajeRepository,
		LeaveRepository:    leaveRepository,
		ScheduleRepository: scheduleRepository,
		UserRepository:     userRepository,
		loc:                loc,
	}
}

// Monthly implements report.ReportService.
func (s *ReportServiceImpl) Monthly(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	actorID, ok := claims["user_id"].(string)
	if !ok || actorID == "" {
		return report.MonthlyReport{}, fmt.Errorf("user_id claim is missing or invalid")
	}
	role, _ := claims["role"].(string)

	targetID := actorID
	if req.UserID != nil && *req.UserID != "" && *req.UserID != actorID {
		if user.Role(role) != user.RoleAdmin {
			return report.MonthlyReport{}, user.ErrAdminPrivilegeRequired
		}
		targetID = *req.UserID
	}

	target, err := s.UserRepository.GetByID(ctx, targetID)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	monthStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, s.loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	events, err := s.FichajeRepository.ListByUserRange(ctx, targetID, monthStart, monthEnd)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list fichajes: %w", err)
	}

	leaves, err := s.LeaveRepository.ListOverlapping(ctx, targetID, monthStart, monthEnd.AddDate(0, 0, -1))
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	sched := s.departmentSchedule(ctx, target.Department)
	days := fichaje.GroupByDay(events, sched, s.loc)

	return report.BuildMonthly(target.Name, req.Month, req.Year, days, leaves, sched, time.Now(), s.loc), nil
}

func (s *ReportServiceImpl) departmentSchedule(ctx context.Context, department string) *schedule.DepartmentSchedule {
	sched, err := s.ScheduleRepository.GetByDepartment(ctx, department)
	if err == nil {
		return &sched
	}
	if !errors.Is(err, schedule.ErrScheduleNotFound) {
		slog.Warn("failed to load department schedule, using default",
			"department", department,
			"error", err,
		)
	}
	return schedule.DefaultSchedule(department)
}
