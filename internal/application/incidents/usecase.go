package incidents

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zelcon/ops-api/internal/application/dto"
	"github.com/zelcon/ops-api/internal/domain"
	"github.com/zelcon/ops-api/internal/domain/entity"
	"github.com/zelcon/ops-api/internal/domain/repository"
)

// UseCase reportes de incidentes: alta por el trabajador y seguimiento de
// estado por el supervisor. El análisis asistido queda fuera del sistema.
type UseCase struct {
	incidents repository.IncidentRepository
	users     repository.UserRepository
}

// NewUseCase construye el caso de uso de incidentes.
func NewUseCase(incidents repository.IncidentRepository, users repository.UserRepository) *UseCase {
	return &UseCase{incidents: incidents, users: users}
}

// Report registra un incidente nuevo en estado Pendiente.
func (uc *UseCase) Report(ctx context.Context, companyID, userID string, in dto.CreateIncidentRequest) (*entity.IncidentReport, error) {
	if in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, domain.ErrUserNotFound
	}
	now := time.Now()
	incident := &entity.IncidentReport{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		UserID:      userID,
		UserName:    user.Name,
		Description: in.Description,
		Status:      entity.IncidentStatusPending,
		Date:        now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.incidents.Create(incident); err != nil {
		return nil, err
	}
	return incident, nil
}

// UpdateStatus cambia el estado de un incidente dentro del conjunto válido.
func (uc *UseCase) UpdateStatus(ctx context.Context, companyID, incidentID, newStatus string) (*entity.IncidentReport, error) {
	switch newStatus {
	case entity.IncidentStatusPending, entity.IncidentStatusInReview, entity.IncidentStatusResolved:
	default:
		return nil, domain.ErrInvalidState
	}
	incident, err := uc.incidents.GetByID(incidentID)
	if err != nil {
		return nil, err
	}
	if incident == nil || incident.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	incident.Status = newStatus
	incident.UpdatedAt = time.Now()
	if err := uc.incidents.Update(incident); err != nil {
		return nil, err
	}
	return incident, nil
}

// ListByCompany lista los incidentes de la empresa.
func (uc *UseCase) ListByCompany(ctx context.Context, companyID string) ([]*entity.IncidentReport, error) {
	return uc.incidents.ListByCompany(companyID)
}
