package warehouse

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zelcon/ops-api/internal/application/dto"
	"github.com/zelcon/ops-api/internal/domain"
	"github.com/zelcon/ops-api/internal/domain/approval"
	"github.com/zelcon/ops-api/internal/domain/entity"
	"github.com/zelcon/ops-api/internal/domain/repository"
)

// UseCase implementa el motor de solicitudes de almacén: presentación,
// aprobación con despacho, rechazo, devolución de préstamos y administración
// de artículos. Toda transición corre dentro del TxRunner, de modo que
// leer-validar-escribir la solicitud y su artículo es atómico; el descuento de
// stock pasa siempre por el StockLedger.
type UseCase struct {
	txRunner TxRunner
	items    repository.InventoryItemRepository
	requests repository.WarehouseRequestRepository
	users    repository.UserRepository
	ledger   *StockLedger
}

// NewUseCase construye el motor de almacén.
func NewUseCase(
	txRunner TxRunner,
	items repository.InventoryItemRepository,
	requests repository.WarehouseRequestRepository,
	users repository.UserRepository,
	ledger *StockLedger,
) *UseCase {
	return &UseCase{
		txRunner: txRunner,
		items:    items,
		requests: requests,
		users:    users,
		ledger:   ledger,
	}
}

// SubmitRequest presenta una solicitud de material. Reglas: cantidad >= 1, el
// artículo debe existir en la empresa, un usuario solo puede tener una
// solicitud Pendiente por artículo, y la cantidad no puede superar el stock
// actual al momento de presentar (la aprobación vuelve a validar de todos
// modos contra el stock vigente).
func (uc *UseCase) SubmitRequest(ctx context.Context, companyID, userID string, in dto.SubmitRequestRequest) (*entity.WarehouseRequest, error) {
	if in.Quantity < 1 || in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, domain.ErrUserNotFound
	}

	area := in.Area
	if area == "" {
		area = user.Area
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}

	now := time.Now()
	req := &entity.WarehouseRequest{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		UserID:        userID,
		UserName:      user.Name,
		UserArea:      area,
		ItemID:        in.ItemID,
		Quantity:      in.Quantity,
		Status:        entity.RequestStatusPending,
		ReturnStatus:  entity.ReturnNotRequired,
		Priority:      priority,
		Justification: in.Justification,
		ProjectCode:   in.ProjectCode,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// Chequeo de duplicado y creación en la misma sección crítica, para que
	// dos envíos simultáneos no produzcan dos solicitudes Pendientes.
	err = uc.txRunner.Run(ctx, func(items repository.InventoryItemRepository, requests repository.WarehouseRequestRepository) error {
		item, err := items.GetByID(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil || item.CompanyID != companyID {
			return domain.ErrNotFound
		}
		pending, err := requests.HasPending(userID, in.ItemID)
		if err != nil {
			return err
		}
		if pending {
			return domain.ErrDuplicatePending
		}
		if in.Quantity > item.Stock {
			return domain.ErrInsufficientStock
		}
		req.ItemName = item.Name
		return requests.Create(req)
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// ApproveAndDeliver aprueba una solicitud Pendiente y la despacha en el mismo
// acto: descuenta el stock vía el libro y deja la solicitud en Entregado, con
// hora y lugar de recojo. Si el stock vigente no alcanza, la operación falla
// con ErrInsufficientStock y la solicitud queda Pendiente sin ningún cambio.
func (uc *UseCase) ApproveAndDeliver(ctx context.Context, companyID, requestID, approverID string, in dto.ApproveRequestRequest) (*entity.WarehouseRequest, error) {
	if strings.TrimSpace(in.PickupLocation) == "" {
		return nil, domain.ErrInvalidInput
	}

	var out *entity.WarehouseRequest
	err := uc.txRunner.Run(ctx, func(items repository.InventoryItemRepository, requests repository.WarehouseRequestRepository) error {
		req, err := requests.GetForUpdate(requestID)
		if err != nil {
			return err
		}
		if req == nil || req.CompanyID != companyID {
			return domain.ErrNotFound
		}
		item, err := items.GetForUpdate(req.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		effect := func() error {
			if item.Stock < req.Quantity {
				return domain.ErrInsufficientStock
			}
			return uc.ledger.Decrement(items, item, req.Quantity)
		}
		if err := approval.Approve(req, approval.StatusDelivered, effect); err != nil {
			return err
		}

		req.PickupTime = in.PickupTime
		req.PickupLocation = in.PickupLocation
		req.ApprovalComment = in.Comment
		if item.RequiresReturn {
			req.ReturnStatus = entity.ReturnPendingReturn
		} else {
			req.ReturnStatus = entity.ReturnNotRequired
		}
		req.UpdatedAt = time.Now()
		if err := requests.Update(req); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reject rechaza una solicitud Pendiente. El motivo es obligatorio y no hay
// ningún cambio de stock.
func (uc *UseCase) Reject(ctx context.Context, companyID, requestID, approverID, comment string) (*entity.WarehouseRequest, error) {
	var out *entity.WarehouseRequest
	err := uc.txRunner.Run(ctx, func(_ repository.InventoryItemRepository, requests repository.WarehouseRequestRepository) error {
		req, err := requests.GetForUpdate(requestID)
		if err != nil {
			return err
		}
		if req == nil || req.CompanyID != companyID {
			return domain.ErrNotFound
		}
		if err := approval.Reject(req, comment); err != nil {
			return err
		}
		req.ApprovalComment = comment
		req.UpdatedAt = time.Now()
		if err := requests.Update(req); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ConfirmReturn confirma la devolución de un préstamo: reingresa la cantidad
// al stock y cierra el seguimiento. Solo es válido desde En Préstamo; una
// segunda confirmación falla con ErrInvalidState y no duplica el reingreso.
func (uc *UseCase) ConfirmReturn(ctx context.Context, companyID, requestID string) (*entity.WarehouseRequest, error) {
	var out *entity.WarehouseRequest
	err := uc.txRunner.Run(ctx, func(items repository.InventoryItemRepository, requests repository.WarehouseRequestRepository) error {
		req, err := requests.GetForUpdate(requestID)
		if err != nil {
			return err
		}
		if req == nil || req.CompanyID != companyID {
			return domain.ErrNotFound
		}
		if !req.IsOnLoan() {
			return domain.ErrInvalidState
		}
		item, err := items.GetForUpdate(req.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if err := uc.ledger.Increment(items, item, req.Quantity); err != nil {
			return err
		}
		now := time.Now()
		req.ReturnStatus = entity.ReturnReturned
		req.ReturnDate = &now
		req.UpdatedAt = now
		if err := requests.Update(req); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AddItem registra un artículo nuevo en el almacén de la empresa.
func (uc *UseCase) AddItem(ctx context.Context, companyID string, in dto.CreateItemRequest) (*entity.InventoryItem, error) {
	if in.Name == "" || in.Stock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	sku := in.SKU
	if sku == "" {
		sku = "GEN-" + strings.ToUpper(uuid.New().String()[:8])
	}
	existing, err := uc.items.GetByCompanyAndSKU(companyID, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		Name:           in.Name,
		SKU:            sku,
		Brand:          in.Brand,
		Model:          in.Model,
		Category:       in.Category,
		Unit:           in.Unit,
		Stock:          in.Stock,
		MinStock:       in.MinStock,
		RequiresReturn: in.RequiresReturn,
		Location:       in.Location,
		Supplier:       in.Supplier,
		LastRestock:    &now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.items.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// AdjustStock fija el stock de un artículo en un valor absoluto (>= 0).
func (uc *UseCase) AdjustStock(ctx context.Context, companyID, itemID string, newStock int) (*entity.InventoryItem, error) {
	if newStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.InventoryItem
	err := uc.txRunner.Run(ctx, func(items repository.InventoryItemRepository, _ repository.WarehouseRequestRepository) error {
		item, err := items.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil || item.CompanyID != companyID {
			return domain.ErrNotFound
		}
		if err := uc.ledger.Adjust(items, item, newStock); err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListItems lista los artículos de la empresa.
func (uc *UseCase) ListItems(ctx context.Context, companyID string) ([]*entity.InventoryItem, error) {
	return uc.items.ListByCompany(companyID)
}

// ListRequests lista las solicitudes de la empresa para la vista del
// almacenero: las Pendientes primero y, dentro de cada grupo, el orden de
// llegada intacto. La prioridad del formulario nunca reordena la atención.
func (uc *UseCase) ListRequests(ctx context.Context, companyID string) ([]*entity.WarehouseRequest, error) {
	reqs, err := uc.requests.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reqs, func(i, j int) bool {
		return reqs[i].Status == entity.RequestStatusPending && reqs[j].Status != entity.RequestStatusPending
	})
	return reqs, nil
}

// ListUserRequests lista las solicitudes del propio usuario.
func (uc *UseCase) ListUserRequests(ctx context.Context, companyID, userID string) ([]*entity.WarehouseRequest, error) {
	return uc.requests.ListByUser(companyID, userID)
}
