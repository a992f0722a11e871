package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/fichaje"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type fichajeRepository struct {
	db *database.DB
}

func NewFichajeRepository(db *database.DB) fichaje.FichajeRepository {
	return &fichajeRepository{db: db}
}

// AcquireUserLock implements fichaje.FichajeRepository. The advisory lock is
// transaction-scoped, so it releases automatically on commit or rollback.
func (r *fichajeRepository) AcquireUserLock(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, userID); err != nil {
		return fmt.Errorf("failed to acquire user lock: %w", err)
	}
	return nil
}

// Create implements fichaje.FichajeRepository.
func (r *fichajeRepository) Create(ctx context.Context, f fichaje.Fichaje) (fichaje.Fichaje, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return fichaje.Fichaje{}, fmt.Errorf("failed to generate fichaje id: %w", err)
	}
	f.ID = id.String()

	query := `
		INSERT INTO fichajes (id, user_id, department, type, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query, f.ID, f.UserID, f.Department, f.Type, f.Timestamp).
		Scan(&f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fichaje.Fichaje{}, fmt.Errorf("failed to create fichaje: %w", err)
	}

	return f, nil
}

// GetByID implements fichaje.FichajeRepository.
func (r *fichajeRepository) GetByID(ctx context.Context, id string) (fichaje.Fichaje, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, department, type, timestamp, created_at, updated_at
		FROM fichajes
		WHERE id = $1
	`

	var f fichaje.Fichaje
	err := q.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.UserID, &f.Department, &f.Type, &f.Timestamp, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fichaje.Fichaje{}, fichaje.ErrFichajeNotFound
		}
		return fichaje.Fichaje{}, fmt.Errorf("failed to get fichaje by id: %w", err)
	}

	return f, nil
}

// GetLastOfDay implements fichaje.FichajeRepository.
func (r *fichajeRepository) GetLastOfDay(ctx context.Context, userID string, dayStart, dayEnd time.Time) (*fichaje.Fichaje, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, department, type, timestamp, created_at, updated_at
		FROM fichajes
		WHERE user_id = $1
		  AND timestamp >= $2
		  AND timestamp < $3
		ORDER BY timestamp DESC
		LIMIT 1
	`

	var f fichaje.Fichaje
	err := q.QueryRow(ctx, query, userID, dayStart, dayEnd).Scan(
		&f.ID, &f.UserID, &f.Department, &f.Type, &f.Timestamp, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last fichaje of day: %w", err)
	}

	return &f, nil
}

// ListByUserRange implements fichaje.FichajeRepository.
func (r *fichajeRepository) ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]fichaje.Fichaje, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, department, type, timestamp, created_at, updated_at
		FROM fichajes
		WHERE user_id = $1
		  AND timestamp >= $2
		  AND timestamp < $3
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list fichajes: %w", err)
	}
	defer rows.Close()

	var result []fichaje.Fichaje
	for rows.Next() {
		var f fichaje.Fichaje
		if err := rows.Scan(&f.ID, &f.UserID, &f.Department, &f.Type, &f.Timestamp, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fichaje: %w", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fichajes: %w", err)
	}

	return result, nil
}

// UpdateTimestamp implements fichaje.FichajeRepository.
func (r *fichajeRepository) UpdateTimestamp(ctx context.Context, id string, ts time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE fichajes
		SET timestamp = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, ts)
	if err != nil {
		return fmt.Errorf("failed to update fichaje timestamp: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fichaje.ErrFichajeNotFound
	}

	return nil
}
