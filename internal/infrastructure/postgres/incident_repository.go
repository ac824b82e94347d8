package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zelcon/ops-api/internal/domain/entity"
	"github.com/zelcon/ops-api/internal/domain/repository"
)

var _ repository.IncidentRepository = (*IncidentRepo)(nil)

// IncidentRepo implementación del puerto IncidentRepository sobre PostgreSQL.
type IncidentRepo struct {
	q Querier
}

// NewIncidentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIncidentRepository(q Querier) *IncidentRepo {
	return &IncidentRepo{q: q}
}

const incidentColumns = `id, company_id, user_id, user_name, description, status, date, created_at, updated_at`

func scanIncident(row pgx.Row) (*entity.IncidentReport, error) {
	var i entity.IncidentReport
	err := row.Scan(
		&i.ID, &i.CompanyID, &i.UserID, &i.UserName, &i.Description, &i.Status, &i.Date,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// GetByID obtiene un incidente por ID.
func (r *IncidentRepo) GetByID(id string) (*entity.IncidentReport, error) {
	query := `SELECT ` + incidentColumns + ` FROM incident_reports WHERE id = $1`
	incident, err := scanIncident(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get incident: %w", err)
	}
	return incident, nil
}

// ListByCompany lista los incidentes de la empresa en orden de reporte.
func (r *IncidentRepo) ListByCompany(companyID string) ([]*entity.IncidentReport, error) {
	query := `SELECT ` + incidentColumns + ` FROM incident_reports WHERE company_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	defer rows.Close()
	var list []*entity.IncidentReport
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("scan incident: %w", err)
		}
		list = append(list, incident)
	}
	return list, rows.Err()
}

// Create persiste un incidente nuevo.
func (r *IncidentRepo) Create(incident *entity.IncidentReport) error {
	query := `
		INSERT INTO incident_reports (id, company_id, user_id, user_name, description, status, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		incident.ID, incident.CompanyID, incident.UserID, incident.UserName,
		incident.Description, incident.Status, incident.Date,
		incident.CreatedAt, incident.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert incident: %w", err)
	}
	return nil
}

// Update actualiza el estado de un incidente.
func (r *IncidentRepo) Update(incident *entity.IncidentReport) error {
	query := `UPDATE incident_reports SET description = $2, status = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		incident.ID, incident.Description, incident.Status, incident.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update incident: %w", err)
	}
	return nil
}
