package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// SaleRepository puerto de persistencia para ventas.
// Una venta se persiste con sus líneas en una sola operación; después del
// commit es inmutable (las líneas pertenecen en exclusiva a su cabecera).
type SaleRepository interface {
	Create(sale *entity.Sale, items []*entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItems(saleID string) ([]*entity.SaleItem, error)
	ListByEmployee(employeeID string, limit, offset int) ([]*entity.Sale, error)
	ListAll(limit, offset int) ([]*entity.Sale, error)
}
