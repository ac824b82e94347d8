package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zelcon/ops-api/internal/domain/entity"
	"github.com/zelcon/ops-api/internal/domain/repository"
)

var _ repository.WarehouseRequestRepository = (*WarehouseRequestRepo)(nil)

// WarehouseRequestRepo implementación del puerto WarehouseRequestRepository
// sobre PostgreSQL (usable con pool o tx).
type WarehouseRequestRepo struct {
	q Querier
}

// NewWarehouseRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRequestRepository(q Querier) *WarehouseRequestRepo {
	return &WarehouseRequestRepo{q: q}
}

const requestColumns = `id, company_id, user_id, user_name, user_area, item_id, item_name,
	quantity, status, approval_comment, pickup_time, pickup_location,
	justification, priority, project_code, return_status, return_date,
	created_at, updated_at`

func scanRequest(row pgx.Row) (*entity.WarehouseRequest, error) {
	var req entity.WarehouseRequest
	err := row.Scan(
		&req.ID, &req.CompanyID, &req.UserID, &req.UserName, &req.UserArea, &req.ItemID, &req.ItemName,
		&req.Quantity, &req.Status, &req.ApprovalComment, &req.PickupTime, &req.PickupLocation,
		&req.Justification, &req.Priority, &req.ProjectCode, &req.ReturnStatus, &req.ReturnDate,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetByID obtiene una solicitud por ID.
func (r *WarehouseRequestRepo) GetByID(id string) (*entity.WarehouseRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM warehouse_requests WHERE id = $1`
	req, err := scanRequest(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	return req, nil
}

// GetForUpdate obtiene una solicitud y bloquea la fila (SELECT FOR UPDATE).
func (r *WarehouseRequestRepo) GetForUpdate(id string) (*entity.WarehouseRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM warehouse_requests WHERE id = $1 FOR UPDATE`
	req, err := scanRequest(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request for update: %w", err)
	}
	return req, nil
}

// ListByCompany lista las solicitudes de la empresa en orden de llegada.
func (r *WarehouseRequestRepo) ListByCompany(companyID string) ([]*entity.WarehouseRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM warehouse_requests WHERE company_id = $1 ORDER BY created_at`
	return r.list(query, companyID)
}

// ListByUser lista las solicitudes de un usuario en orden de llegada.
func (r *WarehouseRequestRepo) ListByUser(companyID, userID string) ([]*entity.WarehouseRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM warehouse_requests
		WHERE company_id = $1 AND user_id = $2 ORDER BY created_at`
	return r.list(query, companyID, userID)
}

func (r *WarehouseRequestRepo) list(query string, args ...any) ([]*entity.WarehouseRequest, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.WarehouseRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

// HasPending indica si el usuario ya tiene una solicitud Pendiente para el artículo.
func (r *WarehouseRequestRepo) HasPending(userID, itemID string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM warehouse_requests
		WHERE user_id = $1 AND item_id = $2 AND status = $3)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, userID, itemID, entity.RequestStatusPending).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check pending request: %w", err)
	}
	return exists, nil
}

// Create persiste una solicitud nueva.
func (r *WarehouseRequestRepo) Create(req *entity.WarehouseRequest) error {
	query := `
		INSERT INTO warehouse_requests (id, company_id, user_id, user_name, user_area, item_id, item_name,
			quantity, status, approval_comment, pickup_time, pickup_location,
			justification, priority, project_code, return_status, return_date,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.CompanyID, req.UserID, req.UserName, req.UserArea, req.ItemID, req.ItemName,
		req.Quantity, req.Status, req.ApprovalComment, req.PickupTime, req.PickupLocation,
		req.Justification, req.Priority, req.ProjectCode, req.ReturnStatus, req.ReturnDate,
		req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

// Update actualiza una solicitud (estado de revisión, despacho y devolución).
func (r *WarehouseRequestRepo) Update(req *entity.WarehouseRequest) error {
	query := `
		UPDATE warehouse_requests
		SET status = $2, approval_comment = $3, pickup_time = $4, pickup_location = $5,
			return_status = $6, return_date = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.Status, req.ApprovalComment, req.PickupTime, req.PickupLocation,
		req.ReturnStatus, req.ReturnDate, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	return nil
}
