package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/schedule"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// overrideRow is the jsonb shape of one weekday override, keyed by weekday
// index (0=Sunday .. 6=Saturday) in the overrides column.
type overrideRow struct {
	DayOff            bool    `json:"day_off"`
	HoraEntrada       *string `json:"hora_entrada,omitempty"`
	HoraSalida        *string `json:"hora_salida,omitempty"`
	HoraEntradaTarde  *string `json:"hora_entrada_tarde,omitempty"`
	HoraSalidaManana  *string `json:"hora_salida_manana,omitempty"`
	ToleranciaMinutos *int    `json:"tolerancia_minutos,omitempty"`
	FlexibleSchedule  *bool   `json:"flexible_schedule,omitempty"`
}

func encodeOverrides(ov schedule.WeekOverrides) ([]byte, error) {
	m := make(map[string]overrideRow)
	for wd, o := range ov {
		if o == nil {
			continue
		}
		m[fmt.Sprintf("%d", wd)] = overrideRow{
			DayOff:            o.DayOff,
			HoraEntrada:       o.HoraEntrada,
			HoraSalida:        o.HoraSalida,
			HoraEntradaTarde:  o.HoraEntradaTarde,
			HoraSalidaManana:  o.HoraSalidaManana,
			ToleranciaMinutos: o.ToleranciaMinutos,
			FlexibleSchedule:  o.FlexibleSchedule,
		}
	}
	return json.Marshal(m)
}

func decodeOverrides(raw []byte) (schedule.WeekOverrides, error) {
	var out schedule.WeekOverrides
	if len(raw) == 0 {
		return out, nil
	}
	var m map[string]overrideRow
	if err := json.Unmarshal(raw, &m); err != nil {
		return out, err
	}
	for key, o := range m {
		var wd int
		if _, err := fmt.Sscanf(key, "%d", &wd); err != nil || wd < 0 || wd > 6 {
			continue
		}
		out[wd] = &schedule.DayOverride{
			DayOff:            o.DayOff,
			HoraEntrada:       o.HoraEntrada,
			HoraSalida:        o.HoraSalida,
			HoraEntradaTarde:  o.HoraEntradaTarde,
			HoraSalidaManana:  o.HoraSalidaManana,
			ToleranciaMinutos: o.ToleranciaMinutos,
			FlexibleSchedule:  o.FlexibleSchedule,
		}
	}
	return out, nil
}

// Upsert implements schedule.ScheduleRepository.
func (r *scheduleRepository) Upsert(ctx context.Context, s schedule.DepartmentSchedule) (schedule.DepartmentSchedule, error) {
	q := GetQuerier(ctx, r.db)

	overrides, err := encodeOverrides(s.Overrides)
	if err != nil {
		return schedule.DepartmentSchedule{}, fmt.Errorf("failed to encode overrides: %w", err)
	}

	query := `
		INSERT INTO department_schedules (
			department, hora_entrada, hora_salida, hora_entrada_tarde, hora_salida_manana,
			tolerancia_minutos, flexible_schedule, overrides
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (department) DO UPDATE SET
			hora_entrada = EXCLUDED.hora_entrada,
			hora_salida = EXCLUDED.hora_salida,
			hora_entrada_tarde = EXCLUDED.hora_entrada_tarde,
			hora_salida_manana = EXCLUDED.hora_salida_manana,
			tolerancia_minutos = EXCLUDED.tolerancia_minutos,
			flexible_schedule = EXCLUDED.flexible_schedule,
			overrides = EXCLUDED.overrides,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		s.Department, s.HoraEntrada, s.HoraSalida, s.HoraEntradaTarde, s.HoraSalidaManana,
		s.ToleranciaMinutos, s.FlexibleSchedule, overrides,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return schedule.DepartmentSchedule{}, fmt.Errorf("failed to upsert department schedule: %w", err)
	}

	return s, nil
}

// GetByDepartment implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetByDepartment(ctx context.Context, department string) (schedule.DepartmentSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT department, hora_entrada, hora_salida, hora_entrada_tarde, hora_salida_manana,
			   tolerancia_minutos, flexible_schedule, overrides, created_at, updated_at
		FROM department_schedules
		WHERE department = $1
	`

	var s schedule.DepartmentSchedule
	var overrides []byte
	var createdAt, updatedAt time.Time
	err := q.QueryRow(ctx, query, department).Scan(
		&s.Department, &s.HoraEntrada, &s.HoraSalida, &s.HoraEntradaTarde, &s.HoraSalidaManana,
		&s.ToleranciaMinutos, &s.FlexibleSchedule, &overrides, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.DepartmentSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.DepartmentSchedule{}, fmt.Errorf("failed to get department schedule: %w", err)
	}
	s.CreatedAt = createdAt
	s.UpdatedAt = updatedAt

	s.Overrides, err = decodeOverrides(overrides)
	if err != nil {
		return schedule.DepartmentSchedule{}, fmt.Errorf("failed to decode overrides: %w", err)
	}

	return s, nil
}
