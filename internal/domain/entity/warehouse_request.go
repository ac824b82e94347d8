package entity

import (
	"time"

	"github.com/zelcon/ops-api/internal/domain/approval"
)

// Estados de una solicitud de almacén. Los valores en castellano son los que
// viajan por la API y se persisten (compatibles con los datos históricos).
const (
	RequestStatusPending   = "Pendiente"
	RequestStatusApproved  = "Aprobado"
	RequestStatusRejected  = "Rechazado"
	RequestStatusDelivered = "Entregado"
)

// Estados de devolución para artículos en préstamo.
const (
	ReturnNotRequired   = "No Requiere"
	ReturnPendingReturn = "En Préstamo"
	ReturnReturned      = "Devuelto"
)

// Prioridades de solicitud. Solo informativas: nunca alteran el orden de
// atención, únicamente la presentación.
const (
	PriorityHigh   = "Alta"
	PriorityMedium = "Media"
	PriorityLow    = "Baja"
)

// WarehouseRequest representa una solicitud de material de almacén.
// La aprobación despacha en el mismo acto: no existe un estado persistido
// "aprobado sin recoger" distinto de Entregado en el flujo del motor.
type WarehouseRequest struct {
	ID        string
	CompanyID string
	UserID    string
	UserName  string
	UserArea  string
	ItemID    string
	ItemName  string
	Quantity  int
	Status    string // ver RequestStatus*

	// Campos del flujo logístico (se fijan al aprobar/rechazar).
	ApprovalComment string
	PickupTime      string
	PickupLocation  string

	// Detalle de la solicitud.
	Justification string
	Priority      string // Alta | Media | Baja, solo informativa
	ProjectCode   string // OT o proyecto

	// Seguimiento de devolución (solo artículos con RequiresReturn).
	ReturnStatus string // ver Return*
	ReturnDate   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReviewStatus traduce el estado propio al estado canónico de revisión.
func (r *WarehouseRequest) ReviewStatus() approval.Status {
	switch r.Status {
	case RequestStatusPending:
		return approval.StatusPending
	case RequestStatusApproved:
		return approval.StatusApproved
	case RequestStatusRejected:
		return approval.StatusRejected
	case RequestStatusDelivered:
		return approval.StatusDelivered
	default:
		return approval.StatusDraft
	}
}

// SetReviewStatus aplica el estado canónico sobre el valor persistido.
func (r *WarehouseRequest) SetReviewStatus(s approval.Status) {
	switch s {
	case approval.StatusPending:
		r.Status = RequestStatusPending
	case approval.StatusApproved:
		r.Status = RequestStatusApproved
	case approval.StatusRejected:
		r.Status = RequestStatusRejected
	case approval.StatusDelivered:
		r.Status = RequestStatusDelivered
	}
}

// IsOnLoan indica si la solicitud tiene material pendiente de devolución.
func (r *WarehouseRequest) IsOnLoan() bool {
	return r.ReturnStatus == ReturnPendingReturn
}
