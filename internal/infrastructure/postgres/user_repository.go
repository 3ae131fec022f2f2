package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, name, role, salary, shift_start, shift_end, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.PasswordHash, user.Name, user.Role,
		user.Salary, user.ShiftStart, user.ShiftEnd, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// El índice parcial users_single_ceo respalda en DB la regla
			// que el caso de uso ya verifica dentro de la transacción.
			if uniqueConstraintName(err) == "users_single_ceo" {
				return domain.ErrCEOAlreadyExists
			}
			return domain.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `
		SELECT id, username, password_hash, name, role, salary, shift_start, shift_end, status, created_at, updated_at
		FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get user by id")
}

// GetByUsername obtiene un usuario por username.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `
		SELECT id, username, password_hash, name, role, salary, shift_start, shift_end, status, created_at, updated_at
		FROM users WHERE username = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, username), "get user by username")
}

// CountByRole cuenta usuarios con el rol dado.
func (r *UserRepo) CountByRole(role entity.Role) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM users WHERE role = $1`, role,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count users by role: %w", err)
	}
	return count, nil
}

// Update actualiza un usuario existente.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET username = $2, password_hash = $3, name = $4, role = $5, salary = $6, shift_start = $7, shift_end = $8, status = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.PasswordHash, user.Name, user.Role,
		user.Salary, user.ShiftStart, user.ShiftEnd, user.Status, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// ListExcludingRole lista usuarios cuyo rol no es el indicado, con paginación.
func (r *UserRepo) ListExcludingRole(role entity.Role, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT id, username, password_hash, name, role, salary, shift_start, shift_end, status, created_at, updated_at
		FROM users WHERE role <> $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, role, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Role,
			&u.Salary, &u.ShiftStart, &u.ShiftEnd, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Role,
		&u.Salary, &u.ShiftStart, &u.ShiftEnd, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
