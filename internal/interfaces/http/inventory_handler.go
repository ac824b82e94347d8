package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zelcon/ops-api/internal/application/dto"
	"github.com/zelcon/ops-api/internal/application/warehouse"
	"github.com/zelcon/ops-api/internal/domain/entity"
	"github.com/zelcon/ops-api/pkg/validator"
)

// InventoryHandler maneja el catálogo de artículos de almacén (protegido).
type InventoryHandler struct {
	uc *warehouse.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *warehouse.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

func toItemResponse(i *entity.InventoryItem) dto.ItemResponse {
	return dto.ItemResponse{
		ID:             i.ID,
		CompanyID:      i.CompanyID,
		Name:           i.Name,
		SKU:            i.SKU,
		Brand:          i.Brand,
		Model:          i.Model,
		Category:       i.Category,
		Unit:           i.Unit,
		Stock:          i.Stock,
		MinStock:       i.MinStock,
		RequiresReturn: i.RequiresReturn,
		Location:       i.Location,
		Supplier:       i.Supplier,
		LowStock:       i.IsLowStock(),
		LastRestock:    i.LastRestock,
		ExpirationDate: i.ExpirationDate,
	}
}

// List godoc
// @Summary      Listar artículos del almacén
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ItemResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/items [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	items, err := h.uc.ListItems(c.Context(), companyID)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, toItemResponse(i))
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar artículo nuevo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "name, category, unit, stock, min_stock"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/items [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return respondValidation(c, errs[0].FailedField)
	}
	item, err := h.uc.AddItem(c.Context(), companyID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toItemResponse(item))
}

// AdjustStock godoc
// @Summary      Corregir el stock de un artículo (valor absoluto)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del artículo"
// @Param        body  body  dto.AdjustStockRequest  true  "stock >= 0"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id}/stock [patch]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.AdjustStock(c.Context(), companyID, c.Params("id"), in.Stock)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toItemResponse(item))
}
