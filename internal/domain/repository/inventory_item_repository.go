package repository

import "github.com/zelcon/ops-api/internal/domain/entity"

// InventoryItemRepository define el puerto de persistencia de artículos de
// almacén (DIP). El stock solo se escribe vía UpdateStock, y únicamente desde
// el libro de stock dentro de la transacción del motor.
type InventoryItemRepository interface {
	GetByID(id string) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila del artículo durante la transacción
	// (SELECT FOR UPDATE) para que chequeo y descuento de stock sean atómicos.
	GetForUpdate(id string) (*entity.InventoryItem, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.InventoryItem, error)
	ListByCompany(companyID string) ([]*entity.InventoryItem, error)
	Create(item *entity.InventoryItem) error
	Update(item *entity.InventoryItem) error
	UpdateStock(id string, stock int) error
}
