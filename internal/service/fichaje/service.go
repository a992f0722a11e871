package fichaje

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/fichaje"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/schedule"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/database"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/timeutil"
	"github.com/andamio-hr/asistencia-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
)

type FichajeServiceImpl struct {
	db *database.DB
	fichaje.FichajeRepository
	schedule.ScheduleRepository
	schedule.ShiftRepository
	loc *time.Location

	// runTx wraps the lock-validate-insert sequence. Defaults to a database
	// transaction; tests swap in a passthrough.
	runTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewFichajeService(
	db *database.DB,
	fichajeRepository fichaje.FichajeRepository,
	scheduleRepository schedule.ScheduleRepository,
	shiftRepository schedule.ShiftRepository,
	loc *time.Location,
) fichaje.FichajeService {
	s := &FichajeServiceImpl{
		db:                 db,
		FichajeRepository:  fichajeRepository,
		ScheduleRepository: scheduleRepository,
		ShiftRepository:    shiftRepository,
		loc:                loc,
	}
	s.runTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, s.db, fn)
	}
	return s
}

func (s *FichajeServiceImpl) actorFromContext(ctx context.Context) (userID, department string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}
	department, _ = claims["department"].(string)
	return userID, department, nil
}

// Create implements fichaje.FichajeService.
func (s *FichajeServiceImpl) Create(ctx context.Context, req fichaje.CreateFichajeRequest) (fichaje.CreateFichajeResponse, error) {
	if err := req.Validate(); err != nil {
		return fichaje.CreateFichajeResponse{}, err
	}

	userID, department, err := s.actorFromContext(ctx)
	if err != nil {
		return fichaje.CreateFichajeResponse{}, err
	}
	if department == "" {
		return fichaje.CreateFichajeResponse{}, fichaje.ErrMissingDepartment
	}

	now := time.Now()
	dayStart, dayEnd := timeutil.DayWindow(now, s.loc)

	var created fichaje.Fichaje
	err = s.runTx(ctx, func(txCtx context.Context) error {
		if err := s.FichajeRepository.AcquireUserLock(txCtx, userID); err != nil {
			return fmt.Errorf("failed to acquire user lock: %w", err)
		}

		last, err := s.FichajeRepository.GetLastOfDay(txCtx, userID, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("failed to get last fichaje of day: %w", err)
		}

		if err := fichaje.ValidateNext(last, fichaje.Type(req.Type)); err != nil {
			return err
		}

		created, err = s.FichajeRepository.Create(txCtx, fichaje.Fichaje{
			UserID:     userID,
			Department: department,
			Type:       fichaje.Type(req.Type),
			Timestamp:  now,
		})
		if err != nil {
			return fmt.Errorf("failed to create fichaje: %w", err)
		}
		return nil
	})
	if err != nil {
		return fichaje.CreateFichajeResponse{}, err
	}

	resp := fichaje.CreateFichajeResponse{
		Fichaje: s.toResponse(created),
		Status: fichaje.StatusResponse{
			HasActiveEntry: fichaje.HasActiveEntry(&created),
			ExpectedType:   fichaje.ExpectedNextType(&created),
		},
	}
	if created.Type == fichaje.TypeEntrada {
		f := s.toResponse(created)
		resp.Status.CurrentFichaje = &f
	}

	// Annotation is best-effort: a schedule lookup failure never undoes a
	// committed fichaje.
	s.annotate(ctx, &resp, created)

	return resp, nil
}

// annotate attaches the detected turno and, for entries, the nearest named
// shift from the department catalogue.
func (s *FichajeServiceImpl) annotate(ctx context.Context, resp *fichaje.CreateFichajeResponse, created fichaje.Fichaje) {
	sched := s.departmentSchedule(ctx, created.Department)
	day := schedule.ResolveForDate(sched, created.Timestamp.In(s.loc))
	resp.Turno = schedule.DetectTurno(day, created.Timestamp, s.loc)

	if created.Type != fichaje.TypeEntrada {
		return
	}

	shifts, err := s.ShiftRepository.ListByDepartment(ctx, created.Department)
	if err != nil {
		slog.Warn("failed to list shifts for annotation",
			"department", created.Department,
			"error", err,
		)
		return
	}
	if matched := schedule.MatchShift(shifts, created.Timestamp, s.loc); matched != nil {
		resp.AssignedShift = &fichaje.AssignedShift{
			ID:          matched.ID,
			Name:        matched.Name,
			HoraEntrada: matched.HoraEntrada,
			HoraSalida:  matched.HoraSalida,
		}
	}
}

// Status implements fichaje.FichajeService.
func (s *FichajeServiceImpl) Status(ctx context.Context) (fichaje.StatusResponse, error) {
	userID, _, err := s.actorFromContext(ctx)
	if err != nil {
		return fichaje.StatusResponse{}, err
	}

	dayStart, dayEnd := timeutil.DayWindow(time.Now(), s.loc)
	last, err := s.FichajeRepository.GetLastOfDay(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return fichaje.StatusResponse{}, fmt.Errorf("failed to get last fichaje of day: %w", err)
	}

	resp := fichaje.StatusResponse{
		HasActiveEntry: fichaje.HasActiveEntry(last),
		ExpectedType:   fichaje.ExpectedNextType(last),
	}
	if resp.HasActiveEntry {
		f := s.toResponse(*last)
		resp.CurrentFichaje = &f
	}
	return resp, nil
}

// MySessions implements fichaje.FichajeService.
func (s *FichajeServiceImpl) MySessions(ctx context.Context, filter fichaje.MyFichajesFilter) ([]fichaje.SessionDay, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	userID, _, err := s.actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(s.loc)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, -30)
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, 1)

	if filter.StartDate != nil && *filter.StartDate != "" {
		d, _ := time.ParseInLocation("2006-01-02", *filter.StartDate, s.loc)
		from = d
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		d, _ := time.ParseInLocation("2006-01-02", *filter.EndDate, s.loc)
		to = d.AddDate(0, 0, 1)
	}

	events, err := s.FichajeRepository.ListByUserRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list fichajes: %w", err)
	}

	// Days are classified against the schedule of the department stamped on
	// their events, not the claims' current one, so history survives
	// department transfers.
	cache := make(map[string]*schedule.DepartmentSchedule)
	schedFor := func(department string) *schedule.DepartmentSchedule {
		if sched, ok := cache[department]; ok {
			return sched
		}
		sched := s.departmentSchedule(ctx, department)
		cache[department] = sched
		return sched
	}
	return fichaje.GroupByDayPerDepartment(events, schedFor, s.loc), nil
}

// departmentSchedule loads the configured schedule, falling back to the
// company-wide default when the department has none.
func (s *FichajeServiceImpl) departmentSchedule(ctx context.Context, department string) *schedule.DepartmentSchedule {
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

func (s *FichajeServiceImpl) toResponse(f fichaje.Fichaje) fichaje.FichajeResponse {
	return fichaje.FichajeResponse{
		ID:         f.ID,
		UserID:     f.UserID,
		Department: f.Department,
		Type:       f.Type,
		Timestamp:  f.Timestamp.In(s.loc).Format(time.RFC3339),
	}
}
