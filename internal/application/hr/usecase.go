package hr

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// HRUseCase operaciones de recursos humanos: listado de personal, salarios y
// ventana de turno. Todas exigen rol HR y nunca tocan al CEO.
type HRUseCase struct {
	userRepo repository.UserRepository
}

// NewHRUseCase construye el caso de uso.
func NewHRUseCase(userRepo repository.UserRepository) *HRUseCase {
	return &HRUseCase{userRepo: userRepo}
}

// ListEmployees lista todo el personal excepto el CEO.
func (uc *HRUseCase) ListEmployees(ctx context.Context, actor entity.Actor, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	if actor.Role != entity.RoleHR {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()

	users, err := uc.userRepo.ListExcludingRole(entity.RoleCEO, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.EmployeeListResponse{
		Employees: make([]dto.UserResponse, 0, len(users)),
		Limit:     page.Limit,
		Offset:    page.Offset,
	}
	for _, u := range users {
		out.Employees = append(out.Employees, *ToUserResponse(u))
	}
	return out, nil
}

// UpdateSalary fija el salario de un empleado. El salario del CEO no se
// gestiona desde HR.
func (uc *HRUseCase) UpdateSalary(ctx context.Context, actor entity.Actor, userID string, salary decimal.Decimal) (*dto.UserResponse, error) {
	if actor.Role != entity.RoleHR {
		return nil, domain.ErrForbidden
	}
	if salary.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Role == entity.RoleCEO {
		return nil, domain.ErrForbidden
	}
	user.Salary = &salary
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// UpdateShiftWindow fija la ventana de turno (horas "15:04") de un empleado.
func (uc *HRUseCase) UpdateShiftWindow(ctx context.Context, actor entity.Actor, userID string, in dto.UpdateShiftWindowRequest) (*dto.UserResponse, error) {
	if actor.Role != entity.RoleHR {
		return nil, domain.ErrForbidden
	}
	start, err := time.Parse("15:04", in.ShiftStart)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse("15:04", in.ShiftEnd)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !end.After(start) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Role == entity.RoleCEO {
		return nil, domain.ErrForbidden
	}
	user.ShiftStart = &in.ShiftStart
	user.ShiftEnd = &in.ShiftEnd
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// ToUserResponse mapea la entidad a su DTO público (sin password hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Name:       u.Name,
		Role:       string(u.Role),
		Salary:     u.Salary,
		ShiftStart: u.ShiftStart,
		ShiftEnd:   u.ShiftEnd,
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
