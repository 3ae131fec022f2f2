package sales

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// History devuelve el historial de ventas: un EMPLOYEE ve solo las propias,
// el resto de roles ve todas.
func (uc *CreateSaleUseCase) History(ctx context.Context, actor entity.Actor, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()

	var (
		list []*entity.Sale
		err  error
	)
	if actor.Role == entity.RoleEmployee {
		list, err = uc.saleRepo.ListByEmployee(actor.UserID, page.Limit, page.Offset)
	} else {
		list, err = uc.saleRepo.ListAll(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	out := &dto.SaleListResponse{
		Sales:  make([]dto.SaleResponse, 0, len(list)),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for _, s := range list {
		out.Sales = append(out.Sales, dto.SaleResponse{
			ID:          s.ID,
			EmployeeID:  s.EmployeeID,
			TotalAmount: s.TotalAmount,
			CreatedAt:   s.CreatedAt,
		})
	}
	return out, nil
}
