package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementación del puerto ShiftRepository sobre PostgreSQL.
//
// Las marcas se hacen con UPDATEs condicionales (check_in IS NULL / check_out
// IS NULL), así "el primer check-in gana" lo decide la DB aunque lleguen dos
// peticiones a la vez.
type ShiftRepo struct {
	q Querier
}

// NewShiftRepository construye el adaptador de persistencia para jornadas. Pasar pool o tx (Querier).
func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

// EnsureForDate crea la fila (empleado, fecha) si no existe.
// ON CONFLICT DO NOTHING hace la operación idempotente bajo concurrencia.
func (r *ShiftRepo) EnsureForDate(employeeID string, date time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO shifts (id, employee_id, date) VALUES ($1, $2, $3)
		 ON CONFLICT (employee_id, date) DO NOTHING`,
		uuid.NewString(), employeeID, date,
	)
	if err != nil {
		return fmt.Errorf("ensure shift: %w", err)
	}
	return nil
}

// SetCheckIn fija check_in solo si aún es NULL. Devuelve true si lo fijó.
func (r *ShiftRepo) SetCheckIn(employeeID string, date time.Time, t time.Time) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE shifts SET check_in = $3 WHERE employee_id = $1 AND date = $2 AND check_in IS NULL`,
		employeeID, date, t,
	)
	if err != nil {
		return false, fmt.Errorf("set check-in: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// SetCheckOut fija check_out solo si la fila existe y check_out es NULL.
// Si no hay fila para ese día, devuelve false sin error.
func (r *ShiftRepo) SetCheckOut(employeeID string, date time.Time, t time.Time) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE shifts SET check_out = $3 WHERE employee_id = $1 AND date = $2 AND check_out IS NULL`,
		employeeID, date, t,
	)
	if err != nil {
		return false, fmt.Errorf("set check-out: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// GetByEmployeeAndDate obtiene la jornada de un empleado para una fecha.
func (r *ShiftRepo) GetByEmployeeAndDate(employeeID string, date time.Time) (*entity.Shift, error) {
	var s entity.Shift
	err := r.q.QueryRow(context.Background(),
		`SELECT id, employee_id, date, check_in, check_out FROM shifts WHERE employee_id = $1 AND date = $2`,
		employeeID, date,
	).Scan(&s.ID, &s.EmployeeID, &s.Date, &s.CheckIn, &s.CheckOut)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return &s, nil
}

// ListAll lista jornadas, más recientes primero.
func (r *ShiftRepo) ListAll(limit, offset int) ([]*entity.Shift, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, employee_id, date, check_in, check_out FROM shifts ORDER BY date DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shift
	for rows.Next() {
		var s entity.Shift
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.Date, &s.CheckIn, &s.CheckOut); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
