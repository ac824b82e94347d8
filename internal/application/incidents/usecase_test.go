package incidents_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zelcon/ops-api/internal/application/dto"
	"github.com/zelcon/ops-api/internal/application/incidents"
	"github.com/zelcon/ops-api/internal/domain"
	"github.com/zelcon/ops-api/internal/domain/entity"
	"github.com/zelcon/ops-api/internal/infrastructure/memory"
)

const testCompanyID = "c-001"

func newEnv(t *testing.T) (*incidents.UseCase, *entity.User) {
	t.Helper()
	store := memory.NewStore()
	worker := &entity.User{
		ID:        uuid.New().String(),
		CompanyID: testCompanyID,
		Email:     "jperez@zelcon-minasur.com",
		Name:      "Juan Pérez",
		Role:      entity.RoleTrabajador,
		Status:    "active",
	}
	require.NoError(t, store.Users().Create(worker))
	return incidents.NewUseCase(store.Incidents(), store.Users()), worker
}

func TestReport_CreaPendiente(t *testing.T) {
	uc, worker := newEnv(t)

	incident, err := uc.Report(context.Background(), testCompanyID, worker.ID, dto.CreateIncidentRequest{
		Description: "Caída de rocas en la galería norte",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.IncidentStatusPending, incident.Status)
	assert.Equal(t, worker.Name, incident.UserName)
	assert.False(t, incident.Date.IsZero())
}

func TestReport_DescripcionObligatoria(t *testing.T) {
	uc, worker := newEnv(t)
	_, err := uc.Report(context.Background(), testCompanyID, worker.ID, dto.CreateIncidentRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_TransicionesValidas(t *testing.T) {
	uc, worker := newEnv(t)
	incident, err := uc.Report(context.Background(), testCompanyID, worker.ID, dto.CreateIncidentRequest{
		Description: "Fuga en manguera hidráulica",
	})
	require.NoError(t, err)

	out, err := uc.UpdateStatus(context.Background(), testCompanyID, incident.ID, entity.IncidentStatusInReview)
	require.NoError(t, err)
	assert.Equal(t, entity.IncidentStatusInReview, out.Status)

	out, err = uc.UpdateStatus(context.Background(), testCompanyID, incident.ID, entity.IncidentStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, entity.IncidentStatusResolved, out.Status)
}

func TestUpdateStatus_EstadoInvalido(t *testing.T) {
	uc, worker := newEnv(t)
	incident, err := uc.Report(context.Background(), testCompanyID, worker.ID, dto.CreateIncidentRequest{
		Description: "Cable expuesto en el taller",
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), testCompanyID, incident.ID, "Cerrado")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestUpdateStatus_OtraEmpresaEsNotFound(t *testing.T) {
	uc, worker := newEnv(t)
	incident, err := uc.Report(context.Background(), testCompanyID, worker.ID, dto.CreateIncidentRequest{
		Description: "Ruido excesivo en chancadora",
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), "c-otra", incident.ID, entity.IncidentStatusResolved)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
