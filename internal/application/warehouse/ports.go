package warehouse

import (
	"context"

	"github.com/zelcon/ops-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén de
// datos, pasando repositorios atados a esa transacción. Es la sección crítica
// del motor: ningún otro escritor puede intercalarse entre leer, validar y
// escribir la solicitud y su artículo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		items repository.InventoryItemRepository,
		requests repository.WarehouseRequestRepository,
	) error) error
}
