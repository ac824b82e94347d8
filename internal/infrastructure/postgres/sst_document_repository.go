package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zelcon/ops-api/internal/domain/entity"
	"github.com/zelcon/ops-api/internal/domain/repository"
)

var _ repository.SSTDocumentRepository = (*SSTDocumentRepo)(nil)

// SSTDocumentRepo implementación del puerto SSTDocumentRepository sobre
// PostgreSQL. El contenido del formulario se guarda como JSONB opaco.
type SSTDocumentRepo struct {
	q Querier
}

// NewSSTDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSSTDocumentRepository(q Querier) *SSTDocumentRepo {
	return &SSTDocumentRepo{q: q}
}

const docColumns = `id, company_id, type, title, status, author_id, author_name,
	approver_id, approved_by, approval_comment, data, created_at, updated_at`

func scanDoc(row pgx.Row) (*entity.SSTDocument, error) {
	var d entity.SSTDocument
	err := row.Scan(
		&d.ID, &d.CompanyID, &d.Type, &d.Title, &d.Status, &d.AuthorID, &d.AuthorName,
		&d.ApproverID, &d.ApprovedBy, &d.ApprovalComment, &d.Data, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByID obtiene un documento por ID.
func (r *SSTDocumentRepo) GetByID(id string) (*entity.SSTDocument, error) {
	query := `SELECT ` + docColumns + ` FROM sst_documents WHERE id = $1`
	doc, err := scanDoc(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// ListByCompany lista los documentos de la empresa en orden de creación.
func (r *SSTDocumentRepo) ListByCompany(companyID string) ([]*entity.SSTDocument, error) {
	query := `SELECT ` + docColumns + ` FROM sst_documents WHERE company_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.SSTDocument
	for rows.Next() {
		doc, err := scanDoc(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, doc)
	}
	return list, rows.Err()
}

// Create persiste un documento nuevo.
func (r *SSTDocumentRepo) Create(doc *entity.SSTDocument) error {
	query := `
		INSERT INTO sst_documents (id, company_id, type, title, status, author_id, author_name,
			approver_id, approved_by, approval_comment, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.CompanyID, doc.Type, doc.Title, doc.Status, doc.AuthorID, doc.AuthorName,
		doc.ApproverID, doc.ApprovedBy, doc.ApprovalComment, doc.Data, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// Update actualiza el estado de revisión y la firma de un documento.
func (r *SSTDocumentRepo) Update(doc *entity.SSTDocument) error {
	query := `
		UPDATE sst_documents
		SET type = $2, title = $3, status = $4, approver_id = $5, approved_by = $6,
			approval_comment = $7, data = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.Type, doc.Title, doc.Status, doc.ApproverID, doc.ApprovedBy,
		doc.ApprovalComment, doc.Data, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	return nil
}

// Delete elimina un documento por ID.
func (r *SSTDocumentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sst_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}
