package repository

import "github.com/zelcon/ops-api/internal/domain/entity"

// UserRepository define el puerto de persistencia de usuarios.
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndCompany(email, companyID string) (*entity.User, error)
	ListByCompany(companyID string) ([]*entity.User, error)
	Create(user *entity.User) error
	Update(user *entity.User) error
}
