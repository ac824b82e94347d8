package entity

import "time"

// InventoryItem representa un artículo de almacén (EPP, herramienta o insumo).
// Stock es siempre >= 0 y solo lo muta el libro de stock (warehouse.StockLedger);
// RequiresReturn distingue herramientas en préstamo de consumibles.
type InventoryItem struct {
	ID             string
	CompanyID      string
	Name           string
	SKU            string // código único por empresa
	Brand          string
	Model          string
	Category       string // EPP, Herramientas, Insumos
	Unit           string // UND, PAR, LITROS, etc.
	Stock          int
	MinStock       int // umbral de alerta de stock crítico
	RequiresReturn bool
	Location       string // Estante A-1, Jaula H-1, etc.
	Supplier       string
	LastRestock    *time.Time
	ExpirationDate *time.Time // químicos o EPP con vencimiento
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsLowStock indica si el artículo está en o bajo su umbral mínimo.
func (i *InventoryItem) IsLowStock() bool {
	return i.Stock <= i.MinStock
}
