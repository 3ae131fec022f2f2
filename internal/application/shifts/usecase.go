package shifts

import (
	"context"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ShiftUseCase marca entrada/salida de jornada por (empleado, día) y expone el
// listado para HR y CEO.
type ShiftUseCase struct {
	shiftRepo repository.ShiftRepository
	now       func() time.Time
}

// NewShiftUseCase construye el caso de uso.
func NewShiftUseCase(shiftRepo repository.ShiftRepository) *ShiftUseCase {
	return &ShiftUseCase{shiftRepo: shiftRepo, now: time.Now}
}

// NewShiftUseCaseWithClock permite inyectar el reloj (tests).
func NewShiftUseCaseWithClock(shiftRepo repository.ShiftRepository, now func() time.Time) *ShiftUseCase {
	return &ShiftUseCase{shiftRepo: shiftRepo, now: now}
}

// dateOf normaliza un instante a su fecha (medianoche local).
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CheckIn marca la entrada del día para el actor (EMPLOYEE). Crea la fila
// (empleado, hoy) si no existe y fija check_in solo si aún no está marcado:
// el primer check-in del día gana, las llamadas siguientes no lo tocan.
func (uc *ShiftUseCase) CheckIn(ctx context.Context, actor entity.Actor) (*dto.ShiftResponse, error) {
	if actor.Role != entity.RoleEmployee {
		return nil, domain.ErrForbidden
	}
	now := uc.now()
	today := dateOf(now)

	if err := uc.shiftRepo.EnsureForDate(actor.UserID, today); err != nil {
		return nil, err
	}
	if _, err := uc.shiftRepo.SetCheckIn(actor.UserID, today, now); err != nil {
		return nil, err
	}
	shift, err := uc.shiftRepo.GetByEmployeeAndDate(actor.UserID, today)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.ErrNotFound
	}
	return toShiftResponse(shift), nil
}

// CheckOut marca la salida del día para el actor (EMPLOYEE). Si no hay fila
// para hoy la operación es un no-op silencioso (comportamiento heredado y
// documentado: permite "salir" sin haber entrado sin reportar error).
func (uc *ShiftUseCase) CheckOut(ctx context.Context, actor entity.Actor) (*dto.ShiftResponse, error) {
	if actor.Role != entity.RoleEmployee {
		return nil, domain.ErrForbidden
	}
	now := uc.now()
	today := dateOf(now)

	if _, err := uc.shiftRepo.SetCheckOut(actor.UserID, today, now); err != nil {
		return nil, err
	}
	shift, err := uc.shiftRepo.GetByEmployeeAndDate(actor.UserID, today)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, nil // sin jornada hoy: no-op
	}
	return toShiftResponse(shift), nil
}

// ListShifts devuelve todas las jornadas, más recientes primero (HR y CEO).
func (uc *ShiftUseCase) ListShifts(ctx context.Context, actor entity.Actor, page dto.PageRequest) (*dto.ShiftListResponse, error) {
	switch actor.Role {
	case entity.RoleHR, entity.RoleCEO:
	case entity.RoleManager, entity.RoleEmployee:
		return nil, domain.ErrForbidden
	default:
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()

	list, err := uc.shiftRepo.ListAll(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ShiftListResponse{
		Shifts: make([]dto.ShiftResponse, 0, len(list)),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for _, s := range list {
		out.Shifts = append(out.Shifts, *toShiftResponse(s))
	}
	return out, nil
}

func toShiftResponse(s *entity.Shift) *dto.ShiftResponse {
	return &dto.ShiftResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		Date:       s.Date.Format("2006-01-02"),
		CheckIn:    s.CheckIn,
		CheckOut:   s.CheckOut,
	}
}
