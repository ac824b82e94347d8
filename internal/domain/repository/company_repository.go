package repository

import "github.com/zelcon/ops-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia de empresas.
type CompanyRepository interface {
	GetByID(id string) (*entity.Company, error)
	List() ([]*entity.Company, error)
	Create(company *entity.Company) error
	Update(company *entity.Company) error
}
