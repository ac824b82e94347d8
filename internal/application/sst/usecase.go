// Package sst implementa el motor de aprobación de documentos de seguridad
// (IPERC, ATS, checklists, PETS, PETAR): la misma máquina de revisión que las
// solicitudes de almacén, sin efectos secundarios de stock.
package sst

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zelcon/ops-api/internal/application/dto"
	"github.com/zelcon/ops-api/internal/domain"
	"github.com/zelcon/ops-api/internal/domain/approval"
	"github.com/zelcon/ops-api/internal/domain/entity"
	"github.com/zelcon/ops-api/internal/domain/repository"
)

// UseCase casos de uso de documentos SST.
type UseCase struct {
	docs  repository.SSTDocumentRepository
	users repository.UserRepository
}

// NewUseCase construye el motor de documentos.
func NewUseCase(docs repository.SSTDocumentRepository, users repository.UserRepository) *UseCase {
	return &UseCase{docs: docs, users: users}
}

// CreateDocument registra un documento SST. Si el autor tiene rol revisor
// (supervisor o company_admin) el documento nace Approved y firmado por él
// mismo; cualquier otro autor lo deja Pending en la cola de revisión.
func (uc *UseCase) CreateDocument(ctx context.Context, companyID, authorID string, in dto.CreateDocumentRequest) (*entity.SSTDocument, error) {
	if in.Title == "" || in.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	author, err := uc.users.GetByID(authorID)
	if err != nil {
		return nil, err
	}
	if author == nil || author.CompanyID != companyID {
		return nil, domain.ErrUserNotFound
	}

	selfApproving := entity.CanSelfApproveDocuments(author.Role)
	now := time.Now()
	doc := &entity.SSTDocument{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		Type:       in.Type,
		Title:      in.Title,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Data:       in.Data,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	doc.SetReviewStatus(approval.Initial(selfApproving))
	if selfApproving {
		doc.ApproverID = author.ID
		doc.ApprovedBy = author.Name
	}
	if err := uc.docs.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Approve firma un documento Pending.
func (uc *UseCase) Approve(ctx context.Context, companyID, docID, approverID, comment string) (*entity.SSTDocument, error) {
	doc, approver, err := uc.loadForReview(companyID, docID, approverID)
	if err != nil {
		return nil, err
	}
	if err := approval.Approve(doc, approval.StatusApproved, nil); err != nil {
		return nil, err
	}
	doc.ApproverID = approver.ID
	doc.ApprovedBy = approver.Name
	doc.ApprovalComment = comment
	doc.UpdatedAt = time.Now()
	if err := uc.docs.Update(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Reject devuelve un documento Pending al autor. El comentario es obligatorio.
func (uc *UseCase) Reject(ctx context.Context, companyID, docID, approverID, comment string) (*entity.SSTDocument, error) {
	doc, approver, err := uc.loadForReview(companyID, docID, approverID)
	if err != nil {
		return nil, err
	}
	if err := approval.Reject(doc, comment); err != nil {
		return nil, err
	}
	doc.ApproverID = approver.ID
	doc.ApprovedBy = approver.Name
	doc.ApprovalComment = comment
	doc.UpdatedAt = time.Now()
	if err := uc.docs.Update(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Archive pasa un documento Approved al archivo histórico.
func (uc *UseCase) Archive(ctx context.Context, companyID, docID string) (*entity.SSTDocument, error) {
	doc, err := uc.docs.GetByID(docID)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if err := approval.Archive(doc); err != nil {
		return nil, err
	}
	doc.UpdatedAt = time.Now()
	if err := uc.docs.Update(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete elimina un documento de la empresa.
func (uc *UseCase) Delete(ctx context.Context, companyID, docID string) error {
	doc, err := uc.docs.GetByID(docID)
	if err != nil {
		return err
	}
	if doc == nil || doc.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.docs.Delete(docID)
}

// ListByCompany lista los documentos de la empresa.
func (uc *UseCase) ListByCompany(ctx context.Context, companyID string) ([]*entity.SSTDocument, error) {
	return uc.docs.ListByCompany(companyID)
}

func (uc *UseCase) loadForReview(companyID, docID, approverID string) (*entity.SSTDocument, *entity.User, error) {
	doc, err := uc.docs.GetByID(docID)
	if err != nil {
		return nil, nil, err
	}
	if doc == nil || doc.CompanyID != companyID {
		return nil, nil, domain.ErrNotFound
	}
	approver, err := uc.users.GetByID(approverID)
	if err != nil {
		return nil, nil, err
	}
	if approver == nil || approver.CompanyID != companyID {
		return nil, nil, domain.ErrUserNotFound
	}
	return doc, approver, nil
}
