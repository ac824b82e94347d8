package repository

import "github.com/zelcon/ops-api/internal/domain/entity"

// SSTDocumentRepository define el puerto de persistencia de documentos SST.
type SSTDocumentRepository interface {
	GetByID(id string) (*entity.SSTDocument, error)
	ListByCompany(companyID string) ([]*entity.SSTDocument, error)
	Create(doc *entity.SSTDocument) error
	Update(doc *entity.SSTDocument) error
	Delete(id string) error
}
