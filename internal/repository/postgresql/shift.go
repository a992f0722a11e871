package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/schedule"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) schedule.ShiftRepository {
	return &shiftRepository{db: db}
}

// Create implements schedule.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, s schedule.NamedShift) (schedule.NamedShift, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return schedule.NamedShift{}, fmt.Errorf("failed to generate shift id: %w", err)
	}
	s.ID = id.String()

	query := `
		INSERT INTO named_shifts (id, department, name, hora_entrada, hora_salida, tolerancia_minutos, active_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		s.ID, s.Department, s.Name, s.HoraEntrada, s.HoraSalida, s.ToleranciaMinutos, s.ActiveDays,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return schedule.NamedShift{}, schedule.ErrShiftNameExists
		}
		return schedule.NamedShift{}, fmt.Errorf("failed to create named shift: %w", err)
	}

	return s, nil
}

// ListByDepartment implements schedule.ShiftRepository.
func (r *shiftRepository) ListByDepartment(ctx context.Context, department string) ([]schedule.NamedShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, department, name, hora_entrada, hora_salida, tolerancia_minutos, active_days, created_at, updated_at
		FROM named_shifts
		WHERE department = $1
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list named shifts: %w", err)
	}
	defer rows.Close()

	var result []schedule.NamedShift
	for rows.Next() {
		var s schedule.NamedShift
		if err := rows.Scan(&s.ID, &s.Department, &s.Name, &s.HoraEntrada, &s.HoraSalida,
			&s.ToleranciaMinutos, &s.ActiveDays, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan named shift: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate named shifts: %w", err)
	}

	return result, nil
}

// Delete implements schedule.ShiftRepository.
func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM named_shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete named shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrShiftNotFound
	}

	return nil
}
