package repository

import "github.com/zelcon/ops-api/internal/domain/entity"

// WarehouseRequestRepository define el puerto de persistencia de solicitudes
// de almacén. Los listados conservan el orden de llegada; cualquier
// priorización es responsabilidad de la capa de aplicación.
type WarehouseRequestRepository interface {
	GetByID(id string) (*entity.WarehouseRequest, error)
	// GetForUpdate bloquea la fila de la solicitud durante la transacción.
	GetForUpdate(id string) (*entity.WarehouseRequest, error)
	ListByCompany(companyID string) ([]*entity.WarehouseRequest, error)
	ListByUser(companyID, userID string) ([]*entity.WarehouseRequest, error)
	// HasPending indica si el usuario ya tiene una solicitud Pendiente para el
	// artículo (regla de una sola solicitud en vuelo por par usuario/artículo).
	HasPending(userID, itemID string) (bool, error)
	Create(req *entity.WarehouseRequest) error
	Update(req *entity.WarehouseRequest) error
}
