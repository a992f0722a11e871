package report

import (
	"context"
	"testing"
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/fichaje"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/leave"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/report"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/schedule"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func claimsContext(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
	})
	require.NoError(t, err)
	token, err := tokenAuth.Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeFichajeRepo struct {
	events []fichaje.Fichaje
}

func (r *fakeFichajeRepo) AcquireUserLock(ctx context.Context, userID string) error { return nil }

func (r *fakeFichajeRepo) Create(ctx context.Context, f fichaje.Fichaje) (fichaje.Fichaje, error) {
	return f, nil
}

func (r *fakeFichajeRepo) GetByID(ctx context.Context, id string) (fichaje.Fichaje, error) {
	return fichaje.Fichaje{}, fichaje.ErrFichajeNotFound
}

func (r *fakeFichajeRepo) GetLastOfDay(ctx context.Context, userID string, dayStart, dayEnd time.Time) (*fichaje.Fichaje, error) {
	return nil, nil
}

func (r *fakeFichajeRepo) ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]fichaje.Fichaje, error) {
	return r.events, nil
}

func (r *fakeFichajeRepo) UpdateTimestamp(ctx context.Context, id string, ts time.Time) error {
	return nil
}

type fakeLeaveRepo struct {
	leaves []leave.LeaveRequest
}

func (r *fakeLeaveRepo) Create(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	return l, nil
}

func (r *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (r *fakeLeaveRepo) ListOverlapping(ctx context.Context, userID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	return r.leaves, nil
}

func (r *fakeLeaveRepo) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (r *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	return nil
}

type fakeScheduleRepo struct {
	schedules map[string]schedule.DepartmentSchedule
}

func (r *fakeScheduleRepo) Upsert(ctx context.Context, s schedule.DepartmentSchedule) (schedule.DepartmentSchedule, error) {
	return s, nil
}

func (r *fakeScheduleRepo) GetByDepartment(ctx context.Context, department string) (schedule.DepartmentSchedule, error) {
	s, ok := r.schedules[department]
	if !ok {
		return schedule.DepartmentSchedule{}, schedule.ErrScheduleNotFound
	}
	return s, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	return newUser, nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	return nil
}

func (r *fakeUserRepo) ListByDepartment(ctx context.Context, department string) ([]user.User, error) {
	return nil, nil
}

func newTestService(fichajeRepo *fakeFichajeRepo, leaveRepo *fakeLeaveRepo, scheduleRepo *fakeScheduleRepo, userRepo *fakeUserRepo) report.ReportService {
	return NewReportService(fichajeRepo, leaveRepo, scheduleRepo, userRepo, time.UTC)
}

func TestReportService_Monthly_OwnReport(t *testing.T) {
	fichajeRepo := &fakeFichajeRepo{events: []fichaje.Fichaje{
		{UserID: "u1", Type: fichaje.TypeEntrada, Timestamp: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)},
		{UserID: "u1", Type: fichaje.TypeSalida, Timestamp: time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)},
	}}
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "Ana García", Department: "ventas"},
	}}
	svc := newTestService(fichajeRepo, &fakeLeaveRepo{}, &fakeScheduleRepo{}, userRepo)

	rep, err := svc.Monthly(claimsContext(t, "u1", user.RoleEmpleado), report.MonthlyReportRequest{Month: 3, Year: 2024})

	require.NoError(t, err)
	assert.Equal(t, "Ana García", rep.UserName)
	assert.Equal(t, 3, rep.Month)
	assert.Equal(t, 2024, rep.Year)
	assert.Len(t, rep.Rows, 31)
	assert.Equal(t, 1, rep.DaysWorked)
	assert.Equal(t, 9.0, rep.TotalHours)
}

func TestReportService_Monthly_OtherUserRequiresAdmin(t *testing.T) {
	svc := newTestService(&fakeFichajeRepo{}, &fakeLeaveRepo{}, &fakeScheduleRepo{}, &fakeUserRepo{})

	other := "u2"
	_, err := svc.Monthly(claimsContext(t, "u1", user.RoleManager), report.MonthlyReportRequest{
		Month: 3, Year: 2024, UserID: &other,
	})

	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
}

func TestReportService_Monthly_AdminForOtherUser(t *testing.T) {
	userRepo := &fakeUserRepo{users: map[string]user.User{
		"u2": {ID: "u2", Name: "Luis Pérez", Department: "marketing"},
	}}
	svc := newTestService(&fakeFichajeRepo{}, &fakeLeaveRepo{}, &fakeScheduleRepo{}, userRepo)

	other := "u2"
	rep, err := svc.Monthly(claimsContext(t, "a1", user.RoleAdmin), report.MonthlyReportRequest{
		Month: 3, Year: 2024, UserID: &other,
	})

	require.NoError(t, err)
	assert.Equal(t, "Luis Pérez", rep.UserName)
}

func TestReportService_Monthly_UnknownTargetUser(t *testing.T) {
	svc := newTestService(&fakeFichajeRepo{}, &fakeLeaveRepo{}, &fakeScheduleRepo{}, &fakeUserRepo{})

	_, err := svc.Monthly(claimsContext(t, "u1", user.RoleEmpleado), report.MonthlyReportRequest{Month: 3, Year: 2024})

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestReportService_Monthly_ValidatesMonth(t *testing.T) {
	svc := newTestService(&fakeFichajeRepo{}, &fakeLeaveRepo{}, &fakeScheduleRepo{}, &fakeUserRepo{})

	_, err := svc.Monthly(claimsContext(t, "u1", user.RoleEmpleado), report.MonthlyReportRequest{Month: 13, Year: 2024})

	require.Error(t, err)
}
