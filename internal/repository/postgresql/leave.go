package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/leave"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to generate leave id: %w", err)
	}
	l.ID = id.String()

	query := `
		INSERT INTO leave_requests (id, user_id, type, start_date, end_date, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query, l.ID, l.UserID, l.Type, l.StartDate, l.EndDate, l.Status, l.Reason).
		Scan(&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return l, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, type, start_date, end_date, status, reason, created_at, updated_at
		FROM leave_requests
		WHERE id = $1
	`

	var l leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.UserID, &l.Type, &l.StartDate, &l.EndDate, &l.Status, &l.Reason, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return l, nil
}

// ListOverlapping implements leave.LeaveRepository.
func (r *leaveRepository) ListOverlapping(ctx context.Context, userID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, type, start_date, end_date, status, reason, created_at, updated_at
		FROM leave_requests
		WHERE user_id = $1
		  AND status <> $2
		  AND start_date <= $4
		  AND end_date >= $3
		ORDER BY start_date ASC
	`

	return r.list(ctx, q, query, userID, leave.StatusRejected, from, to)
}

// ListByUser implements leave.LeaveRepository.
func (r *leaveRepository) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, type, start_date, end_date, status, reason, created_at, updated_at
		FROM leave_requests
		WHERE user_id = $1
		ORDER BY start_date DESC
	`

	return r.list(ctx, q, query, userID)
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
	`

	tag, err := q.Exec(ctx, query, id, status, leave.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestAlreadyProcessed
	}

	return nil
}

func (r *leaveRepository) list(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var result []leave.LeaveRequest
	for rows.Next() {
		var l leave.LeaveRequest
		if err := rows.Scan(&l.ID, &l.UserID, &l.Type, &l.StartDate, &l.EndDate, &l.Status, &l.Reason, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return result, nil
}
