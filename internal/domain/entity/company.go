package entity

import "time"

// Company representa una empresa/tenant del sistema (enfoque industrial Perú).
type Company struct {
	ID        string
	Name      string
	RUC       string // RUC peruano de 11 dígitos
	Address   string
	Phone     string
	Domain    string // dominio de correo corporativo, ej. "zelcon-minasur.com"
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Módulos contratables por empresa (deben coincidir con company_modules).
const (
	ModuleSST       = "sst"
	ModuleTraining  = "training"
	ModuleWarehouse = "warehouse"
	ModuleOps       = "operations"
)

// CompanyModule activación de un módulo en una empresa.
type CompanyModule struct {
	ID         string
	CompanyID  string
	ModuleName string // ver constantes Module*
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
