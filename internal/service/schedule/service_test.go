package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/schedule"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func claimsContext(t *testing.T, userID string, role user.Role, department string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := tokenAuth.Encode(map[string]interface{}{
		"user_id":    userID,
		"role":       string(role),
		"department": department,
	})
	require.NoError(t, err)
	token, err := tokenAuth.Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeScheduleRepo struct {
	schedules map[string]schedule.DepartmentSchedule
	upserted  []schedule.DepartmentSchedule
}

func (r *fakeScheduleRepo) Upsert(ctx context.Context, s schedule.DepartmentSchedule) (schedule.DepartmentSchedule, error) {
	r.upserted = append(r.upserted, s)
	return s, nil
}

func (r *fakeScheduleRepo) GetByDepartment(ctx context.Context, department string) (schedule.DepartmentSchedule, error) {
	s, ok := r.schedules[department]
	if !ok {
		return schedule.DepartmentSchedule{}, schedule.ErrScheduleNotFound
	}
	return s, nil
}

type fakeShiftRepo struct {
	shifts  []schedule.NamedShift
	deleted []string
}

func (r *fakeShiftRepo) Create(ctx context.Context, s schedule.NamedShift) (schedule.NamedShift, error) {
	s.ID = "shift-1"
	r.shifts = append(r.shifts, s)
	return s, nil
}

func (r *fakeShiftRepo) ListByDepartment(ctx context.Context, department string) ([]schedule.NamedShift, error) {
	return r.shifts, nil
}

func (r *fakeShiftRepo) Delete(ctx context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func newTestService(scheduleRepo *fakeScheduleRepo, shiftRepo *fakeShiftRepo) schedule.ScheduleService {
	return NewScheduleService(scheduleRepo, shiftRepo, time.UTC)
}

func strPtr(s string) *string { return &s }

func TestScheduleService_Upsert(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{}
	svc := newTestService(scheduleRepo, &fakeShiftRepo{})

	resp, err := svc.Upsert(claimsContext(t, "m1", user.RoleManager, "ventas"), schedule.UpsertScheduleRequest{
		Department:        "ventas",
		HoraEntrada:       "09:00",
		HoraSalida:        "18:00",
		ToleranciaMinutos: 10,
		Overrides: map[string]schedule.DayOverrideRequest{
			"viernes": {HoraSalida: strPtr("15:00")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "ventas", resp.Department)
	require.Contains(t, resp.Overrides, "viernes")
	require.Len(t, scheduleRepo.upserted, 1)
	require.NotNil(t, scheduleRepo.upserted[0].Overrides[time.Friday])
}

func TestScheduleService_Upsert_BlocksOtherDepartments(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeShiftRepo{})

	_, err := svc.Upsert(claimsContext(t, "m1", user.RoleManager, "marketing"), schedule.UpsertScheduleRequest{
		Department:  "ventas",
		HoraEntrada: "09:00",
		HoraSalida:  "18:00",
	})

	assert.ErrorIs(t, err, user.ErrManagerAccessRequired)
}

func TestScheduleService_Upsert_AdminAnyDepartment(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeShiftRepo{})

	_, err := svc.Upsert(claimsContext(t, "a1", user.RoleAdmin, "rrhh"), schedule.UpsertScheduleRequest{
		Department:  "ventas",
		HoraEntrada: "09:00",
		HoraSalida:  "18:00",
	})

	require.NoError(t, err)
}

func TestScheduleService_Upsert_ValidatesTimes(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeShiftRepo{})

	_, err := svc.Upsert(claimsContext(t, "m1", user.RoleManager, "ventas"), schedule.UpsertScheduleRequest{
		Department:  "ventas",
		HoraEntrada: "25:00",
		HoraSalida:  "18:00",
	})

	require.Error(t, err)
}

func TestScheduleService_ResolveDay(t *testing.T) {
	scheduleRepo := &fakeScheduleRepo{schedules: map[string]schedule.DepartmentSchedule{
		"ventas": {
			Department:        "ventas",
			HoraEntrada:       "09:00",
			HoraSalida:        "18:00",
			ToleranciaMinutos: 10,
			Overrides: schedule.WeekOverrides{
				time.Monday: &schedule.DayOverride{DayOff: true},
			},
		},
	}}
	svc := newTestService(scheduleRepo, &fakeShiftRepo{})
	ctx := claimsContext(t, "u1", user.RoleEmpleado, "ventas")

	// 2026-03-02 is a Monday
	resp, err := svc.ResolveDay(ctx, "ventas", "2026-03-02")
	require.NoError(t, err)
	assert.True(t, resp.DayOff)
	assert.Nil(t, resp.Schedule)

	resp, err = svc.ResolveDay(ctx, "ventas", "2026-03-03")
	require.NoError(t, err)
	assert.False(t, resp.DayOff)
	require.NotNil(t, resp.Schedule)
	assert.Equal(t, "09:00", resp.Schedule.HoraEntrada)
}

func TestScheduleService_ResolveDay_ValidatesDate(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeShiftRepo{})

	_, err := svc.ResolveDay(claimsContext(t, "u1", user.RoleEmpleado, "ventas"), "ventas", "02/03/2026")

	require.Error(t, err)
}

func TestScheduleService_ResolveDay_UnknownDepartment(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeShiftRepo{})

	_, err := svc.ResolveDay(claimsContext(t, "u1", user.RoleEmpleado, "ventas"), "ventas", "2026-03-02")

	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}

func TestScheduleService_CreateShift(t *testing.T) {
	shiftRepo := &fakeShiftRepo{}
	svc := newTestService(&fakeScheduleRepo{}, shiftRepo)

	resp, err := svc.CreateShift(claimsContext(t, "m1", user.RoleManager, "ventas"), schedule.CreateShiftRequest{
		Department:        "ventas",
		Name:              "Turno de mañana",
		HoraEntrada:       "06:00",
		HoraSalida:        "14:00",
		ToleranciaMinutos: 5,
		ActiveDays:        []string{"lunes", "martes", "miércoles", "jueves", "viernes"},
	})

	require.NoError(t, err)
	assert.Equal(t, "shift-1", resp.ID)
	require.Len(t, shiftRepo.shifts, 1)
}

func TestScheduleService_CreateShift_ValidatesActiveDays(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeShiftRepo{})

	_, err := svc.CreateShift(claimsContext(t, "m1", user.RoleManager, "ventas"), schedule.CreateShiftRequest{
		Department:  "ventas",
		Name:        "Turno raro",
		HoraEntrada: "06:00",
		HoraSalida:  "14:00",
		ActiveDays:  []string{"funday"},
	})

	require.Error(t, err)
}

func TestScheduleService_DeleteShift_RequiresManager(t *testing.T) {
	shiftRepo := &fakeShiftRepo{}
	svc := newTestService(&fakeScheduleRepo{}, shiftRepo)

	err := svc.DeleteShift(claimsContext(t, "u1", user.RoleEmpleado, "ventas"), "shift-1")

	assert.ErrorIs(t, err, user.ErrManagerAccessRequired)
	assert.Empty(t, shiftRepo.deleted)
}

func TestScheduleService_DeleteShift(t *testing.T) {
	shiftRepo := &fakeShiftRepo{}
	svc := newTestService(&fakeScheduleRepo{}, shiftRepo)

	err := svc.DeleteShift(claimsContext(t, "m1", user.RoleManager, "ventas"), "shift-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"shift-1"}, shiftRepo.deleted)
}
