package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/adjustment"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

const adjustmentColumns = `
	a.id, a.fichaje_id, a.user_id, a.original_timestamp, a.requested_timestamp,
	a.reason, a.status, a.manager_id, a.rejection_reason, a.resolved_at,
	a.created_at, a.updated_at, u.name, u.department
`

func scanAdjustment(row pgx.Row) (adjustment.AdjustmentRequest, error) {
	var a adjustment.AdjustmentRequest
	err := row.Scan(
		&a.ID, &a.FichajeID, &a.UserID, &a.OriginalTimestamp, &a.RequestedTimestamp,
		&a.Reason, &a.Status, &a.ManagerID, &a.RejectionReason, &a.ResolvedAt,
		&a.CreatedAt, &a.UpdatedAt, &a.UserName, &a.Department,
	)
	return a, err
}

// Create implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) Create(ctx context.Context, a adjustment.AdjustmentRequest) (adjustment.AdjustmentRequest, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return adjustment.AdjustmentRequest{}, fmt.Errorf("failed to generate adjustment id: %w", err)
	}
	a.ID = id.String()

	query := `
		INSERT INTO adjustment_requests (
			id, fichaje_id, user_id, original_timestamp, requested_timestamp, reason, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		a.ID, a.FichajeID, a.UserID, a.OriginalTimestamp, a.RequestedTimestamp, a.Reason, a.Status,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return adjustment.AdjustmentRequest{}, fmt.Errorf("failed to create adjustment request: %w", err)
	}

	return a, nil
}

// GetByID implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) GetByID(ctx context.Context, id string) (adjustment.AdjustmentRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + adjustmentColumns + `
		FROM adjustment_requests a
		JOIN users u ON u.id = a.user_id
		WHERE a.id = $1
	`

	a, err := scanAdjustment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return adjustment.AdjustmentRequest{}, adjustment.ErrAdjustmentNotFound
		}
		return adjustment.AdjustmentRequest{}, fmt.Errorf("failed to get adjustment request: %w", err)
	}

	return a, nil
}

// HasPendingForFichaje implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) HasPendingForFichaje(ctx context.Context, fichajeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM adjustment_requests
			WHERE fichaje_id = $1 AND status = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, fichajeID, adjustment.StatusPending).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pending adjustments: %w", err)
	}

	return exists, nil
}

// Resolve implements adjustment.AdjustmentRepository. The status guard in the
// WHERE clause makes re-processing a resolved request affect zero rows.
func (r *adjustmentRepository) Resolve(ctx context.Context, id string, status adjustment.Status, managerID string, rejectionReason *string, resolvedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE adjustment_requests
		SET status = $2, manager_id = $3, rejection_reason = $4, resolved_at = $5, updated_at = NOW()
		WHERE id = $1 AND status = $6
	`

	tag, err := q.Exec(ctx, query, id, status, managerID, rejectionReason, resolvedAt, adjustment.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to resolve adjustment request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return adjustment.ErrAlreadyProcessed
	}

	return nil
}

// ListByUser implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) ListByUser(ctx context.Context, userID string) ([]adjustment.AdjustmentRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + adjustmentColumns + `
		FROM adjustment_requests a
		JOIN users u ON u.id = a.user_id
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC
	`

	return r.list(ctx, q, query, userID)
}

// ListPending implements adjustment.AdjustmentRepository.
func (r *adjustmentRepository) ListPending(ctx context.Context, department string) ([]adjustment.AdjustmentRequest, error) {
	q := GetQuerier(ctx, r.db)

	if department == "" {
		query := `
			SELECT ` + adjustmentColumns + `
			FROM adjustment_requests a
			JOIN users u ON u.id = a.user_id
			WHERE a.status = $1
			ORDER BY a.created_at ASC
		`
		return r.list(ctx, q, query, adjustment.StatusPending)
	}

	query := `
		SELECT ` + adjustmentColumns + `
		FROM adjustment_requests a
		JOIN users u ON u.id = a.user_id
		WHERE a.status = $1 AND u.department = $2
		ORDER BY a.created_at ASC
	`
	return r.list(ctx, q, query, adjustment.StatusPending, department)
}

func (r *adjustmentRepository) list(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]adjustment.AdjustmentRequest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustment requests: %w", err)
	}
	defer rows.Close()

	var result []adjustment.AdjustmentRequest
	for rows.Next() {
		a, err := scanAdjustment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adjustment request: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate adjustment requests: %w", err)
	}

	return result, nil
}
