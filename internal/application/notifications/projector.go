// Package notifications deriva el feed de alertas por rol. Es lectura pura:
// se recalcula en cada consulta sobre el estado vigente de las colecciones,
// sin estado propio ni invalidación de caché. Puede leer un snapshot
// ligeramente desfasado respecto de un escritor concurrente; para un feed de
// campanita eso es aceptable.
package notifications

import (
	"context"
	"fmt"

	"github.com/zelcon/ops-api/internal/domain/entity"
	"github.com/zelcon/ops-api/internal/domain/repository"
)

// Tipos de alerta.
const (
	TypeDanger  = "danger"
	TypeWarning = "warning"
	TypeInfo    = "info"
	TypeSuccess = "success"
)

// Alert una notificación puntual del feed.
type Alert struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Link    string `json:"link"`
}

// Projector arma el feed de alertas de un usuario según su rol.
type Projector struct {
	items     repository.InventoryItemRepository
	requests  repository.WarehouseRequestRepository
	docs      repository.SSTDocumentRepository
	incidents repository.IncidentRepository
}

// NewProjector construye el proyector.
func NewProjector(
	items repository.InventoryItemRepository,
	requests repository.WarehouseRequestRepository,
	docs repository.SSTDocumentRepository,
	incidents repository.IncidentRepository,
) *Projector {
	return &Projector{items: items, requests: requests, docs: docs, incidents: incidents}
}

// Feed devuelve las alertas vigentes para el usuario.
func (p *Projector) Feed(ctx context.Context, user *entity.User) ([]Alert, error) {
	if user == nil || user.CompanyID == "" {
		return nil, nil
	}
	switch user.Role {
	case entity.RoleAlmacenero:
		return p.keeperFeed(user.CompanyID)
	case entity.RoleSupervisor:
		return p.supervisorFeed(user.CompanyID)
	case entity.RoleCompanyAdmin:
		return p.adminFeed(user.CompanyID)
	case entity.RoleTrabajador:
		return p.workerFeed(user.CompanyID, user.ID)
	default:
		return nil, nil
	}
}

// keeperFeed: stock crítico + solicitudes pendientes de atención.
func (p *Projector) keeperFeed(companyID string) ([]Alert, error) {
	alerts := []Alert{}

	items, err := p.items.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	for _, i := range items {
		if i.IsLowStock() {
			alerts = append(alerts, Alert{
				ID:      "stk-" + i.ID,
				Type:    TypeDanger,
				Title:   "Alerta de Stock Crítico",
				Message: fmt.Sprintf("%s tiene %d %s (Mín: %d)", i.Name, i.Stock, i.Unit, i.MinStock),
				Link:    "/almacenero/inventory",
			})
		}
	}

	reqs, err := p.requests.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	for _, r := range reqs {
		if r.Status == entity.RequestStatusPending {
			alerts = append(alerts, Alert{
				ID:      "req-" + r.ID,
				Type:    TypeInfo,
				Title:   "Nueva Solicitud",
				Message: fmt.Sprintf("%s solicita %d %s", r.UserName, r.Quantity, r.ItemName),
				Link:    "/almacenero/requests",
			})
		}
	}
	return alerts, nil
}

// supervisorFeed: incidentes pendientes + documentos por aprobar.
func (p *Projector) supervisorFeed(companyID string) ([]Alert, error) {
	alerts := []Alert{}

	incidents, err := p.incidents.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	for _, i := range incidents {
		if i.Status == entity.IncidentStatusPending {
			alerts = append(alerts, Alert{
				ID:      "inc-" + i.ID,
				Type:    TypeDanger,
				Title:   "Nuevo Incidente",
				Message: fmt.Sprintf("%s reportó: %s", i.UserName, truncate(i.Description, 30)),
				Link:    "/supervisor/incidents",
			})
		}
	}

	docs, err := p.docs.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		if d.Status == entity.DocStatusPending {
			alerts = append(alerts, Alert{
				ID:      "doc-" + d.ID,
				Type:    TypeWarning,
				Title:   "Documento por Aprobar",
				Message: fmt.Sprintf("%s creado por %s", d.Type, d.AuthorName),
				Link:    "/supervisor/sst",
			})
		}
	}
	return alerts, nil
}

// adminFeed: resumen de documentos pendientes de la empresa.
func (p *Projector) adminFeed(companyID string) ([]Alert, error) {
	docs, err := p.docs.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	pending := 0
	for _, d := range docs {
		if d.Status == entity.DocStatusPending {
			pending++
		}
	}
	if pending == 0 {
		return []Alert{}, nil
	}
	return []Alert{{
		ID:      "docs-admin",
		Type:    TypeInfo,
		Title:   "Resumen SSOMA",
		Message: fmt.Sprintf("Hay %d documentos pendientes de revisión en la empresa.", pending),
		Link:    "/company/sst",
	}}, nil
}

// workerFeed: pedidos propios listos para recoger o entregados.
func (p *Projector) workerFeed(companyID, userID string) ([]Alert, error) {
	reqs, err := p.requests.ListByUser(companyID, userID)
	if err != nil {
		return nil, err
	}
	alerts := []Alert{}
	for _, r := range reqs {
		if r.Status == entity.RequestStatusApproved || r.Status == entity.RequestStatusDelivered {
			alerts = append(alerts, Alert{
				ID:      "myreq-" + r.ID,
				Type:    TypeSuccess,
				Title:   "Pedido Listo",
				Message: fmt.Sprintf("Tu solicitud de %s fue aprobada.", r.ItemName),
				Link:    "/employee/warehouse",
			})
		}
	}
	return alerts, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
