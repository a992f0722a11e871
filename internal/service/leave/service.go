package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/leave"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/user"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/email"
	"github.com/go-chi/jwtauth/v5"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	user.UserRepository
	emailService email.EmailService
	loc          *time.Location
}

func NewLeaveService(
	leaveRepository leave.LeaveRepository,
	userRepository user.UserRepository,
	emailService email.EmailService,
	loc *time.Location,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepository,
		UserRepository:  userRepository,
		emailService:    emailService,
		loc:             loc,
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
	return u, nil
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	overlapping, err := s.LeaveRepository.ListOverlapping(ctx, actor.ID, req.ParsedStart, req.ParsedEnd)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check overlapping leave: %w", err)
	}
	if len(overlapping) > 0 {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	created, err := s.LeaveRepository.Create(ctx, leave.LeaveRequest{
		UserID:    actor.ID,
		Type:      leave.LeaveType(req.Type),
		StartDate: req.ParsedStart,
		EndDate:   req.ParsedEnd,
		Status:    leave.StatusPending,
		Reason:    req.Reason,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return toResponse(created), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context) ([]leave.LeaveResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.LeaveRepository.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	resp := make([]leave.LeaveResponse, 0, len(list))
	for _, l := range list {
		resp = append(resp, toResponse(l))
	}
	return resp, nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.resolve(ctx, id, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.resolve(ctx, id, leave.StatusRejected)
}

func (s *LeaveServiceImpl) resolve(ctx context.Context, id string, status leave.Status) (leave.LeaveResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !actor.IsManager() {
		return leave.LeaveResponse{}, user.ErrManagerAccessRequired
	}

	req, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if req.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	requester, err := s.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to load requesting user: %w", err)
	}
	if !actor.CanResolveFor(requester.Department) {
		return leave.LeaveResponse{}, leave.ErrCrossDepartment
	}

	if err := s.LeaveRepository.UpdateStatus(ctx, id, status); err != nil {
		return leave.LeaveResponse{}, err
	}
	req.Status = status

	s.notifyResolved(req, requester)
	return toResponse(req), nil
}

func (s *LeaveServiceImpl) notifyResolved(req leave.LeaveRequest, requester user.User) {
	go func() {
		err := s.emailService.SendLeaveResolved(
			requester.Email,
			requester.Name,
			req.Type.Label(),
			req.StartDate.Format("02/01/2006"),
			req.EndDate.Format("02/01/2006"),
			string(req.Status),
		)
		if err != nil {
			slog.Error("failed to send leave notification", "leave_id", req.ID, "error", err)
		}
	}()
}

func toResponse(l leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		Type:      string(l.Type),
		Label:     l.Type.Label(),
		StartDate: l.StartDate.Format("2006-01-02"),
		EndDate:   l.EndDate.Format("2006-01-02"),
		Status:    l.Status,
		Reason:    l.Reason,
	}
}
