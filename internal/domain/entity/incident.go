package entity

import "time"

// Estados de un reporte de incidente.
const (
	IncidentStatusPending  = "Pendiente"
	IncidentStatusInReview = "En Revisión"
	IncidentStatusResolved = "Resuelto"
)

// IncidentReport representa un reporte de incidente de seguridad levantado por
// un trabajador y atendido por el supervisor SST.
type IncidentReport struct {
	ID          string
	CompanyID   string
	UserID      string
	UserName    string
	Description string
	Status      string // ver IncidentStatus*
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
