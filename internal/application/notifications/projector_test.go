package notifications_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zelcon/ops-api/internal/application/notifications"
	"github.com/zelcon/ops-api/internal/domain/entity"
	"github.com/zelcon/ops-api/internal/infrastructure/memory"
)

const testCompanyID = "c-001"

func newProjector(t *testing.T) (*notifications.Projector, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return notifications.NewProjector(store.Items(), store.Requests(), store.Docs(), store.Incidents()), store
}

func userWithRole(role string) *entity.User {
	return &entity.User{ID: uuid.New().String(), CompanyID: testCompanyID, Role: role}
}

func TestFeed_AlmaceneroStockCritico(t *testing.T) {
	p, store := newProjector(t)
	require.NoError(t, store.Items().Create(&entity.InventoryItem{
		ID: uuid.New().String(), CompanyID: testCompanyID,
		Name: "Respirador Media Cara", SKU: "EPP-002", Category: "EPP", Unit: "UND",
		Stock: 5, MinStock: 20,
	}))
	require.NoError(t, store.Items().Create(&entity.InventoryItem{
		ID: uuid.New().String(), CompanyID: testCompanyID,
		Name: "Casco Minero", SKU: "EPP-001", Category: "EPP", Unit: "UND",
		Stock: 50, MinStock: 10,
	}))

	alerts, err := p.Feed(context.Background(), userWithRole(entity.RoleAlmacenero))
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	assert.Equal(t, notifications.TypeDanger, alerts[0].Type)
	assert.Equal(t, "Alerta de Stock Crítico", alerts[0].Title)
	assert.Contains(t, alerts[0].Message, "Respirador Media Cara")
	assert.Contains(t, alerts[0].Message, "5")
	assert.Contains(t, alerts[0].Message, "Mín: 20")
}

func TestFeed_AlmaceneroSolicitudesPendientes(t *testing.T) {
	p, store := newProjector(t)
	require.NoError(t, store.Requests().Create(&entity.WarehouseRequest{
		ID: uuid.New().String(), CompanyID: testCompanyID,
		UserID: "u-1", UserName: "Juan Pérez", ItemName: "Casco Minero",
		Quantity: 2, Status: entity.RequestStatusPending,
	}))
	require.NoError(t, store.Requests().Create(&entity.WarehouseRequest{
		ID: uuid.New().String(), CompanyID: testCompanyID,
		UserID: "u-2", UserName: "Ana Torres", ItemName: "Linterna",
		Quantity: 1, Status: entity.RequestStatusDelivered,
	}))

	alerts, err := p.Feed(context.Background(), userWithRole(entity.RoleAlmacenero))
	require.NoError(t, err)
	require.Len(t, alerts, 1, "solo las Pendientes generan alerta")
	assert.Equal(t, "Nueva Solicitud", alerts[0].Title)
	assert.Contains(t, alerts[0].Message, "Juan Pérez")
}

func TestFeed_SupervisorIncidentesYDocumentos(t *testing.T) {
	p, store := newProjector(t)
	require.NoError(t, store.Incidents().Create(&entity.IncidentReport{
		ID: uuid.New().String(), CompanyID: testCompanyID,
		UserName:    "Juan Pérez",
		Description: "Derrame de aceite hidráulico en la rampa de acceso al nivel 2",
		Status:      entity.IncidentStatusPending,
		Date:        time.Now(),
	}))
	require.NoError(t, store.Docs().Create(&entity.SSTDocument{
		ID: uuid.New().String(), CompanyID: testCompanyID,
		Type: entity.SSTTypeIPERC, Title: "IPERC Perforación",
		AuthorName: "Ana Torres", Status: entity.DocStatusPending,
	}))

	alerts, err := p.Feed(context.Background(), userWithRole(entity.RoleSupervisor))
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	assert.Equal(t, "Nuevo Incidente", alerts[0].Title)
	assert.Contains(t, alerts[0].Message, "Juan Pérez")
	assert.Contains(t, alerts[0].Message, "...", "la descripción larga se trunca")

	assert.Equal(t, "Documento por Aprobar", alerts[1].Title)
	assert.Contains(t, alerts[1].Message, entity.SSTTypeIPERC)
}

func TestFeed_AdminResumenSoloSiHayPendientes(t *testing.T) {
	p, store := newProjector(t)

	alerts, err := p.Feed(context.Background(), userWithRole(entity.RoleCompanyAdmin))
	require.NoError(t, err)
	assert.Empty(t, alerts)

	require.NoError(t, store.Docs().Create(&entity.SSTDocument{
		ID: uuid.New().String(), CompanyID: testCompanyID,
		Type: entity.SSTTypeATS, Title: "ATS Izaje", Status: entity.DocStatusPending,
	}))

	alerts, err = p.Feed(context.Background(), userWithRole(entity.RoleCompanyAdmin))
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Resumen SSOMA", alerts[0].Title)
	assert.Contains(t, alerts[0].Message, "1 documentos pendientes")
}

func TestFeed_TrabajadorPedidosListos(t *testing.T) {
	p, store := newProjector(t)
	me := userWithRole(entity.RoleTrabajador)

	require.NoError(t, store.Requests().Create(&entity.WarehouseRequest{
		ID: uuid.New().String(), CompanyID: testCompanyID,
		UserID: me.ID, ItemName: "Casco Minero",
		Status: entity.RequestStatusDelivered,
	}))
	require.NoError(t, store.Requests().Create(&entity.WarehouseRequest{
		ID: uuid.New().String(), CompanyID: testCompanyID,
		UserID: me.ID, ItemName: "Linterna",
		Status: entity.RequestStatusPending,
	}))
	// Solicitud de otro usuario: no aparece en mi feed.
	require.NoError(t, store.Requests().Create(&entity.WarehouseRequest{
		ID: uuid.New().String(), CompanyID: testCompanyID,
		UserID: "u-otro", ItemName: "Taladro",
		Status: entity.RequestStatusDelivered,
	}))

	alerts, err := p.Feed(context.Background(), me)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, notifications.TypeSuccess, alerts[0].Type)
	assert.Equal(t, "Pedido Listo", alerts[0].Title)
	assert.Contains(t, alerts[0].Message, "Casco Minero")
}

func TestFeed_SinEmpresaNoHayAlertas(t *testing.T) {
	p, _ := newProjector(t)
	alerts, err := p.Feed(context.Background(), &entity.User{ID: "u-1", Role: entity.RoleSuperAdmin})
	require.NoError(t, err)
	assert.Nil(t, alerts)
}
