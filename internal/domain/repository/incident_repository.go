package repository

import "github.com/zelcon/ops-api/internal/domain/entity"

// IncidentRepository define el puerto de persistencia de reportes de incidente.
type IncidentRepository interface {
	GetByID(id string) (*entity.IncidentReport, error)
	ListByCompany(companyID string) ([]*entity.IncidentReport, error)
	Create(incident *entity.IncidentReport) error
	Update(incident *entity.IncidentReport) error
}
