package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin   = "super_admin"
	RoleCompanyAdmin = "company_admin"
	RoleSupervisor   = "supervisor"
	RoleAlmacenero   = "almacenero"
	RoleTrabajador   = "trabajador"
)

// User representa un usuario del sistema (pertenece a una Company, salvo super_admin).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // ver constantes Role*
	Area         string // área operativa, ej. "Mina Subterránea"
	Position     string
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanSelfApproveDocuments indica si el rol firma sus propios documentos SST
// sin pasar por la cola de revisión (atajo de aprobación).
func CanSelfApproveDocuments(role string) bool {
	return role == RoleSupervisor || role == RoleCompanyAdmin
}
