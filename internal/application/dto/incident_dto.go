package dto

import "time"

// CreateIncidentRequest reporte de incidente de un trabajador.
type CreateIncidentRequest struct {
	Description string `json:"description" validate:"required"`
}

// UpdateIncidentStatusRequest cambio de estado por el supervisor.
type UpdateIncidentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// IncidentResponse proyección HTTP de un reporte de incidente.
type IncidentResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
}
