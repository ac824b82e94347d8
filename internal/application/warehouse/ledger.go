package warehouse

import (
	"time"

	"github.com/zelcon/ops-api/internal/domain"
	"github.com/zelcon/ops-api/internal/domain/entity"
	"github.com/zelcon/ops-api/internal/domain/repository"
)

// StockLedger es el único mutador de InventoryItem.Stock. Los callers validan
// suficiencia antes de descontar; el libro vuelve a validar y devuelve
// ErrInvariantViolation si el resultado fuera negativo, sin confiar en el
// pre-chequeo del caller.
type StockLedger struct{}

// NewStockLedger construye el libro de stock.
func NewStockLedger() *StockLedger {
	return &StockLedger{}
}

// Decrement descuenta qty unidades del artículo y persiste el nuevo stock.
func (l *StockLedger) Decrement(repo repository.InventoryItemRepository, item *entity.InventoryItem, qty int) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	if item.Stock-qty < 0 {
		return domain.ErrInvariantViolation
	}
	item.Stock -= qty
	item.UpdatedAt = time.Now()
	return repo.UpdateStock(item.ID, item.Stock)
}

// Increment reingresa qty unidades al artículo (devolución de préstamo).
func (l *StockLedger) Increment(repo repository.InventoryItemRepository, item *entity.InventoryItem, qty int) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	item.Stock += qty
	item.UpdatedAt = time.Now()
	return repo.UpdateStock(item.ID, item.Stock)
}

// Adjust fija el stock en un valor absoluto (corrección administrativa del
// almacenero, ej. conteo físico).
func (l *StockLedger) Adjust(repo repository.InventoryItemRepository, item *entity.InventoryItem, newStock int) error {
	if newStock < 0 {
		return domain.ErrInvalidInput
	}
	item.Stock = newStock
	item.UpdatedAt = time.Now()
	return repo.UpdateStock(item.ID, item.Stock)
}
