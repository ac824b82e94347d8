package warehouse_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zelcon/ops-api/internal/application/dto"
	"github.com/zelcon/ops-api/internal/application/warehouse"
	"github.com/zelcon/ops-api/internal/domain"
	"github.com/zelcon/ops-api/internal/domain/entity"
	"github.com/zelcon/ops-api/internal/infrastructure/memory"
)

const (
	testCompanyID = "c-001"
	otherCompany  = "c-999"
)

type env struct {
	store  *memory.Store
	uc     *warehouse.UseCase
	worker *entity.User
	keeper *entity.User
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.NewStore()
	uc := warehouse.NewUseCase(store.TxRunner(), store.Items(), store.Requests(), store.Users(), warehouse.NewStockLedger())

	worker := &entity.User{
		ID:        uuid.New().String(),
		CompanyID: testCompanyID,
		Email:     "jperez@zelcon-minasur.com",
		Name:      "Juan Pérez",
		Role:      entity.RoleTrabajador,
		Area:      "Mina Subterránea",
		Status:    "active",
	}
	keeper := &entity.User{
		ID:        uuid.New().String(),
		CompanyID: testCompanyID,
		Email:     "mquispe@zelcon-minasur.com",
		Name:      "María Quispe",
		Role:      entity.RoleAlmacenero,
		Status:    "active",
	}
	require.NoError(t, store.Users().Create(worker))
	require.NoError(t, store.Users().Create(keeper))

	return &env{store: store, uc: uc, worker: worker, keeper: keeper}
}

func (e *env) addItem(t *testing.T, name string, stock, minStock int, requiresReturn bool) *entity.InventoryItem {
	t.Helper()
	now := time.Now()
	item := &entity.InventoryItem{
		ID:             uuid.New().String(),
		CompanyID:      testCompanyID,
		Name:           name,
		SKU:            "SKU-" + uuid.New().String()[:8],
		Category:       "EPP",
		Unit:           "UND",
		Stock:          stock,
		MinStock:       minStock,
		RequiresReturn: requiresReturn,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, e.store.Items().Create(item))
	return item
}

func (e *env) submit(t *testing.T, itemID string, qty int) *entity.WarehouseRequest {
	t.Helper()
	req, err := e.uc.SubmitRequest(context.Background(), testCompanyID, e.worker.ID, dto.SubmitRequestRequest{
		ItemID:   itemID,
		Quantity: qty,
	})
	require.NoError(t, err)
	return req
}

func (e *env) approve(t *testing.T, requestID string) *entity.WarehouseRequest {
	t.Helper()
	req, err := e.uc.ApproveAndDeliver(context.Background(), testCompanyID, requestID, e.keeper.ID, dto.ApproveRequestRequest{
		PickupTime:     "14:00",
		PickupLocation: "Ventanilla de Almacén Central",
	})
	require.NoError(t, err)
	return req
}

func (e *env) itemStock(t *testing.T, id string) int {
	t.Helper()
	item, err := e.store.Items().GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item.Stock
}

// ---- presentación ----

func TestSubmitRequest_CreaPendiente(t *testing.T) {
	e := newEnv(t)
	item := e.addItem(t, "Casco Minero", 10, 2, false)

	req := e.submit(t, item.ID, 3)

	assert.Equal(t, entity.RequestStatusPending, req.Status)
	assert.Equal(t, entity.ReturnNotRequired, req.ReturnStatus)
	assert.Equal(t, entity.PriorityMedium, req.Priority, "prioridad por defecto Media")
	assert.Equal(t, e.worker.Name, req.UserName)
	assert.Equal(t, e.worker.Area, req.UserArea)
	assert.Equal(t, item.Name, req.ItemName)
	assert.Equal(t, 10, e.itemStock(t, item.ID), "presentar no toca el stock")
}

func TestSubmitRequest_CantidadInvalida(t *testing.T) {
	e := newEnv(t)
	item := e.addItem(t, "Guantes de Cuero", 10, 2, false)

	_, err := e.uc.SubmitRequest(context.Background(), testCompanyID, e.worker.ID, dto.SubmitRequestRequest{
		ItemID: item.ID, Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmitRequest_ArticuloDeOtraEmpresa(t *testing.T) {
	e := newEnv(t)
	now := time.Now()
	foreign := &entity.InventoryItem{
		ID: uuid.New().String(), CompanyID: otherCompany, Name: "Taladro",
		SKU: "TAL-01", Category: "Herramientas", Unit: "UND", Stock: 5,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, e.store.Items().Create(foreign))

	_, err := e.uc.SubmitRequest(context.Background(), testCompanyID, e.worker.ID, dto.SubmitRequestRequest{
		ItemID: foreign.ID, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmitRequest_DuplicadaPendiente(t *testing.T) {
	e := newEnv(t)
	item := e.addItem(t, "Lentes de Seguridad", 50, 10, false)

	e.submit(t, item.ID, 2)
	_, err := e.uc.SubmitRequest(context.Background(), testCompanyID, e.worker.ID, dto.SubmitRequestRequest{
		ItemID: item.ID, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicatePending,
		"un usuario solo puede tener una solicitud pendiente por artículo")
}

func TestSubmitRequest_TrasResolverSePuedeVolverAPedir(t *testing.T) {
	e := newEnv(t)
	item := e.addItem(t, "Respirador", 20, 5, false)

	first := e.submit(t, item.ID, 2)
	e.approve(t, first.ID)

	// Resuelta la primera, una nueva solicitud del mismo artículo es válida.
	second := e.submit(t, item.ID, 1)
	assert.Equal(t, entity.RequestStatusPending, second.Status)
}

func TestSubmitRequest_StockInsuficienteAlPresentar(t *testing.T) {
	e := newEnv(t)
	item := e.addItem(t, "Arnés de Seguridad", 3, 1, true)

	_, err := e.uc.SubmitRequest(context.Background(), testCompanyID, e.worker.ID, dto.SubmitRequestRequest{
		ItemID: item.ID, Quantity: 4,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// ---- aprobación con despacho ----

func TestApproveAndDeliver_DescuentaYEntrega(t *testing.T) {
	e := newEnv(t)
	item := e.addItem(t, "Casco Minero", 10, 2, false)
	req := e.submit(t, item.ID, 3)

	out := e.approve(t, req.ID)

	assert.Equal(t, entity.RequestStatusDelivered, out.Status)
	assert.Equal(t, entity.ReturnNotRequired, out.ReturnStatus)
	assert.Equal(t, "Ventanilla de Almacén Central", out.PickupLocation)
	assert.Equal(t, 7, e.itemStock(t, item.ID))
}

func TestApproveAndDeliver_PrestamoQuedaEnPrestamo(t *testing.T) {
	e := newEnv(t)
	item := e.addItem(t, "Taladro Percutor", 4, 1, true)
	req := e.submit(t, item.ID, 1)

	out := e.approve(t, req.ID)

	assert.Equal(t, entity.RequestStatusDelivered, out.Status)
	assert.Equal(t, entity.ReturnPendingReturn, out.ReturnStatus)
	assert.Equal(t, 3, e.itemStock(t, item.ID))
}

func TestApproveAndDeliver_StockInsuficienteDejaPendiente(t *testing.T) {
	e := newEnv(t)
	item := e.addItem(t, "Botas de Jebe", 5, 2, false)
	req := e.submit(t, item.ID, 5)

	// El stock baja entre la presentación y la aprobación.
	_, err := e.uc.AdjustStock(context.Background(), testCompanyID, item.ID, 2)
	require.NoError(t, err)

	_, err = e.uc.ApproveAndDeliver(context.Background(), testCompanyID, req.ID, e.keeper.ID, dto.ApproveRequestRequest{
		PickupLocation: "Almacén",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	stored, err := e.store.Requests().GetByID(req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusPending, stored.Status, "la solicitud queda Pendiente sin cambios")
	assert.Equal(t, 2, e.itemStock(t, item.ID), "el stock no se toca")
}

func TestApproveAndDeliver_LugarDeRecojoObligatorio(t *testing.T) {
	e := newEnv(t)
	item := e.addItem(t, "Linterna", 10, 2, false)
	req := e.submit(t, item.ID, 1)

	_, err := e.uc.ApproveAndDeliver(context.Background(), testCompanyID, req.ID, e.keeper.ID, dto.ApproveRequestRequest{
		PickupLocation: "  ",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApproveAndDeliver_SoloDesdePendiente(t *testing.T) {
	e := newEnv(t)
	item := e.addItem(t, "Soldadora", 2, 1, true)
	req := e.submit(t, item.ID, 1)
	e.approve(t, req.ID)

	_, err := e.uc.ApproveAndDeliver(context.Background(), testCompanyID, req.ID, e.keeper.ID, dto.ApproveRequestRequest{
		PickupLocation: "Almacén",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, 1, e.itemStock(t, item.ID), "sin doble descuento")
}

// ---- rechazo ----

func TestReject_RequiereComentario(t *testing.T) {
	e := newEnv(t)
	item := e.addItem(t, "Oxígeno Medicinal", 8, 2, false)
	req := e.submit(t, item.ID, 2)

	_, err := e.uc.Reject(context.Background(), testCompanyID, req.ID, e.keeper.ID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := e.uc.Reject(context.Background(), testCompanyID, req.ID, e.keeper.ID, "sin orden de trabajo")
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusRejected, out.Status)
	assert.Equal(t, "sin orden de trabajo", out.ApprovalComment)
	assert.Equal(t, 8, e.itemStock(t, item.ID), "rechazar no toca el stock")
}

func TestReject_NoResucitaRechazadas(t *testing.T) {
	e := newEnv(t)
	item := e.addItem(t, "Cuerda Estática", 6, 1, false)
	req := e.submit(t, item.ID, 1)

	_, err := e.uc.Reject(context.Background(), testCompanyID, req.ID, e.keeper.ID, "stock reservado")
	require.NoError(t, err)

	_, err = e.uc.ApproveAndDeliver(context.Background(), testCompanyID, req.ID, e.keeper.ID, dto.ApproveRequestRequest{
		PickupLocation: "Almacén",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState,
		"una solicitud Rechazada no puede pasar a Entregada")
}

// ---- devoluciones ----

func TestConfirmReturn_ReingresaStock(t *testing.T) {
	e := newEnv(t)
	item := e.addItem(t, "Amoladora", 5, 1, true)
	req := e.submit(t, item.ID, 2)
	e.approve(t, req.ID)
	require.Equal(t, 3, e.itemStock(t, item.ID))

	out, err := e.uc.ConfirmReturn(context.Background(), testCompanyID, req.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.ReturnReturned, out.ReturnStatus)
	assert.NotNil(t, out.ReturnDate)
	assert.Equal(t, 5, e.itemStock(t, item.ID), "préstamo completo: el stock vuelve al valor original")
}

func TestConfirmReturn_SegundaConfirmacionNoDuplica(t *testing.T) {
	e := newEnv(t)
	item := e.addItem(t, "Escalera Telescópica", 3, 1, true)
	req := e.submit(t, item.ID, 1)
	e.approve(t, req.ID)

	_, err := e.uc.ConfirmReturn(context.Background(), testCompanyID, req.ID)
	require.NoError(t, err)
	require.Equal(t, 3, e.itemStock(t, item.ID))

	_, err = e.uc.ConfirmReturn(context.Background(), testCompanyID, req.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, 3, e.itemStock(t, item.ID), "sin doble reingreso")
}

func TestConfirmReturn_ConsumibleNoDevuelve(t *testing.T) {
	e := newEnv(t)
	item := e.addItem(t, "Guantes Descartables", 100, 20, false)
	req := e.submit(t, item.ID, 10)
	e.approve(t, req.ID)

	_, err := e.uc.ConfirmReturn(context.Background(), testCompanyID, req.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

// ---- administración de artículos ----

func TestAddItem_GeneraSKUSiFalta(t *testing.T) {
	e := newEnv(t)
	item, err := e.uc.AddItem(context.Background(), testCompanyID, dto.CreateItemRequest{
		Name: "Cinta Reflectiva", Category: "EPP", Unit: "ROLLO", Stock: 12, MinStock: 3,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.SKU)
	assert.Contains(t, item.SKU, "GEN-")
}

func TestAddItem_SKUDuplicado(t *testing.T) {
	e := newEnv(t)
	_, err := e.uc.AddItem(context.Background(), testCompanyID, dto.CreateItemRequest{
		Name: "Candado de Bloqueo", SKU: "LOTO-01", Category: "EPP", Unit: "UND", Stock: 5,
	})
	require.NoError(t, err)

	_, err = e.uc.AddItem(context.Background(), testCompanyID, dto.CreateItemRequest{
		Name: "Candado de Bloqueo Rojo", SKU: "LOTO-01", Category: "EPP", Unit: "UND", Stock: 2,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAdjustStock_Validaciones(t *testing.T) {
	e := newEnv(t)
	item := e.addItem(t, "Pilas AA", 40, 10, false)

	_, err := e.uc.AdjustStock(context.Background(), testCompanyID, item.ID, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := e.uc.AdjustStock(context.Background(), testCompanyID, item.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Stock)
	assert.Equal(t, 0, e.itemStock(t, item.ID))
}

// ---- listados ----

func TestListRequests_PendientesPrimeroOrdenDeLlegadaIntacto(t *testing.T) {
	e := newEnv(t)
	a := e.addItem(t, "Artículo A", 50, 5, false)
	b := e.addItem(t, "Artículo B", 50, 5, false)
	c := e.addItem(t, "Artículo C", 50, 5, false)

	r1 := e.submit(t, a.ID, 1) // luego entregada
	r2 := e.submit(t, b.ID, 1) // pendiente
	r3 := e.submit(t, c.ID, 1) // pendiente, con prioridad Alta
	// La prioridad nunca reordena: r2 (Media) sigue antes que r3 (Alta).
	stored, err := e.store.Requests().GetByID(r3.ID)
	require.NoError(t, err)
	stored.Priority = entity.PriorityHigh
	require.NoError(t, e.store.Requests().Update(stored))

	e.approve(t, r1.ID)

	list, err := e.uc.ListRequests(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, r2.ID, list[0].ID)
	assert.Equal(t, r3.ID, list[1].ID)
	assert.Equal(t, r1.ID, list[2].ID)
}

func TestListUserRequests_SoloDelUsuario(t *testing.T) {
	e := newEnv(t)
	item := e.addItem(t, "Artículo X", 50, 5, false)
	e.submit(t, item.ID, 1)

	other := &entity.User{
		ID: uuid.New().String(), CompanyID: testCompanyID,
		Email: "otro@zelcon-minasur.com", Name: "Otro", Role: entity.RoleTrabajador, Status: "active",
	}
	require.NoError(t, e.store.Users().Create(other))
	_, err := e.uc.SubmitRequest(context.Background(), testCompanyID, other.ID, dto.SubmitRequestRequest{
		ItemID: item.ID, Quantity: 2,
	})
	require.NoError(t, err)

	mine, err := e.uc.ListUserRequests(context.Background(), testCompanyID, e.worker.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, e.worker.ID, mine[0].UserID)
}

// ---- conservación de stock ----

func TestConservacionDeStock_CicloCompletoDePrestamo(t *testing.T) {
	e := newEnv(t)
	item := e.addItem(t, "Multímetro", 7, 1, true)

	req := e.submit(t, item.ID, 3)
	e.approve(t, req.ID)
	_, err := e.uc.ConfirmReturn(context.Background(), testCompanyID, req.ID)
	require.NoError(t, err)

	assert.Equal(t, 7, e.itemStock(t, item.ID),
		"despacho + devolución completa conservan el stock")
}
