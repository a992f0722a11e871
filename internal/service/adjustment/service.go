package adjustment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/adjustment"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/fichaje"
	"github.com/andamio-hr/asistencia-backend-go/internal/domain/user"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/database"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/email"
	"github.com/andamio-hr/asistencia-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
)

type AdjustmentServiceImpl struct {
	db *database.DB
	adjustment.AdjustmentRepository
	fichaje.FichajeRepository
	user.UserRepository
	emailService email.EmailService
	loc          *time.Location

	// runTx wraps the approval double write. Defaults to a database
	// transaction; tests swap in a passthrough.
	runTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewAdjustmentService(
	db *database.DB,
	adjustmentRepository adjustment.AdjustmentRepository,
	fichajeRepository fichaje.FichajeRepository,
	userRepository user.UserRepository,
	emailService email.EmailService,
	loc *time.Location,
) adjustment.AdjustmentService {
	s := &AdjustmentServiceImpl{
		db:                   db,
		AdjustmentRepository: adjustmentRepository,
		FichajeRepository:    fichajeRepository,
		UserRepository:       userRepository,
		emailService:         emailService,
		loc:                  loc,
	}
	s.runTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, s.db, fn)
	}
	return s
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

// Create implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) Create(ctx context.Context, req adjustment.CreateAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	actor, err := actorFromContext(ctx)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	target, err := s.FichajeRepository.GetByID(ctx, req.FichajeID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	if target.UserID != actor.ID {
		return adjustment.AdjustmentResponse{}, adjustment.ErrNotFichajeOwner
	}

	pending, err := s.AdjustmentRepository.HasPendingForFichaje(ctx, req.FichajeID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to check pending adjustments: %w", err)
	}
	if pending {
		return adjustment.AdjustmentResponse{}, adjustment.ErrPendingExists
	}

	created, err := s.AdjustmentRepository.Create(ctx, adjustment.AdjustmentRequest{
		FichajeID:          req.FichajeID,
		UserID:             actor.ID,
		OriginalTimestamp:  target.Timestamp,
		RequestedTimestamp: req.ParsedTimestamp,
		Reason:             req.Reason,
		Status:             adjustment.StatusPending,
	})
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to create adjustment request: %w", err)
	}
	return s.toResponse(created), nil
}

// ListMine implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) ListMine(ctx context.Context) ([]adjustment.AdjustmentResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.AdjustmentRepository.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	return s.toResponses(list), nil
}

// ListPending implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) ListPending(ctx context.Context) ([]adjustment.AdjustmentResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.IsManager() {
		return nil, user.ErrManagerAccessRequired
	}

	department := actor.Department
	if actor.IsAdmin() {
		department = ""
	}

	list, err := s.AdjustmentRepository.ListPending(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending adjustments: %w", err)
	}
	return s.toResponses(list), nil
}

// Approve implements adjustment.AdjustmentService. The status flip and the
// fichaje timestamp rewrite commit or roll back together.
func (s *AdjustmentServiceImpl) Approve(ctx context.Context, id string) (adjustment.AdjustmentResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	req, err := s.resolvable(ctx, actor, id)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	now := time.Now()
	err = s.runTx(ctx, func(txCtx context.Context) error {
		if err := s.AdjustmentRepository.Resolve(txCtx, id, adjustment.StatusApproved, actor.ID, nil, now); err != nil {
			return err
		}
		return s.FichajeRepository.UpdateTimestamp(txCtx, req.FichajeID, req.RequestedTimestamp)
	})
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	resolved, err := s.AdjustmentRepository.GetByID(ctx, id)
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to reload adjustment: %w", err)
	}

	s.notifyResolved(ctx, resolved)
	return s.toResponse(resolved), nil
}

// Reject implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) Reject(ctx context.Context, req adjustment.RejectAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	if _, err := s.resolvable(ctx, actor, req.ID); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	if err := s.AdjustmentRepository.Resolve(ctx, req.ID, adjustment.StatusRejected, actor.ID, req.RejectionReason, time.Now()); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	resolved, err := s.AdjustmentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to reload adjustment: %w", err)
	}

	s.notifyResolved(ctx, resolved)
	return s.toResponse(resolved), nil
}

// resolvable loads a request and checks the actor may resolve it.
func (s *AdjustmentServiceImpl) resolvable(ctx context.Context, actor user.User, id string) (adjustment.AdjustmentRequest, error) {
	req, err := s.AdjustmentRepository.GetByID(ctx, id)
	if err != nil {
		return adjustment.AdjustmentRequest{}, err
	}
	if req.IsResolved() {
		return adjustment.AdjustmentRequest{}, adjustment.ErrAlreadyProcessed
	}

	if !actor.IsManager() {
		return adjustment.AdjustmentRequest{}, user.ErrManagerAccessRequired
	}
	if !actor.IsAdmin() {
		if req.Department == nil || *req.Department != actor.Department {
			return adjustment.AdjustmentRequest{}, adjustment.ErrCrossDepartment
		}
	}
	return req, nil
}

// notifyResolved emails the requesting employee. Failures are logged, never
// returned: the resolution already committed.
func (s *AdjustmentServiceImpl) notifyResolved(ctx context.Context, req adjustment.AdjustmentRequest) {
	requester, err := s.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		slog.Warn("failed to load requester for adjustment notification", "adjustment_id", req.ID, "error", err)
		return
	}

	reason := ""
	if req.RejectionReason != nil {
		reason = *req.RejectionReason
	}

	go func() {
		err := s.emailService.SendAdjustmentResolved(
			requester.Email,
			requester.Name,
			req.OriginalTimestamp.In(s.loc).Format("02/01/2006"),
			req.RequestedTimestamp.In(s.loc).Format("15:04"),
			string(req.Status),
			reason,
		)
		if err != nil {
			slog.Error("failed to send adjustment notification", "adjustment_id", req.ID, "error", err)
		}
	}()
}

func (s *AdjustmentServiceImpl) toResponse(a adjustment.AdjustmentRequest) adjustment.AdjustmentResponse {
	resp := adjustment.AdjustmentResponse{
		ID:                 a.ID,
		FichajeID:          a.FichajeID,
		UserID:             a.UserID,
		UserName:           a.UserName,
		Department:         a.Department,
		OriginalTimestamp:  a.OriginalTimestamp.In(s.loc).Format(time.RFC3339),
		RequestedTimestamp: a.RequestedTimestamp.In(s.loc).Format(time.RFC3339),
		Reason:             a.Reason,
		Status:             a.Status,
		ManagerID:          a.ManagerID,
		RejectionReason:    a.RejectionReason,
		CreatedAt:          a.CreatedAt.In(s.loc).Format(time.RFC3339),
	}
	if a.ResolvedAt != nil {
		resolvedAt := a.ResolvedAt.In(s.loc).Format(time.RFC3339)
		resp.ResolvedAt = &resolvedAt
	}
	return resp
}

func (s *AdjustmentServiceImpl) toResponses(list []adjustment.AdjustmentRequest) []adjustment.AdjustmentResponse {
	resp := make([]adjustment.AdjustmentResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, s.toResponse(a))
	}
	return resp
}
