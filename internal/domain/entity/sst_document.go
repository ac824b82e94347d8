package entity

import (
	"encoding/json"
	"time"

	"github.com/zelcon/ops-api/internal/domain/approval"
)

// Tipos de documento SST.
const (
	SSTTypeIPERC     = "IPERC"
	SSTTypeATS       = "ATS"
	SSTTypeChecklist = "Checklist"
	SSTTypePETS      = "PETS"
	SSTTypePETAR     = "PETAR"
)

// Estados de un documento SST (valores persistidos).
const (
	DocStatusDraft    = "Draft"
	DocStatusPending  = "Pending"
	DocStatusApproved = "Approved"
	DocStatusRejected = "Rejected"
	DocStatusArchived = "Archived"
)

// SSTDocument representa un documento de seguridad y salud en el trabajo
// (matriz IPERC, ATS, checklist de inspección, PETS o PETAR). El contenido del
// formulario viaja opaco en Data; el motor solo gobierna el ciclo de revisión.
type SSTDocument struct {
	ID              string
	CompanyID       string
	Type            string // ver SSTType*
	Title           string
	Status          string // ver DocStatus*
	AuthorID        string
	AuthorName      string
	ApproverID      string
	ApprovedBy      string // nombre del aprobador, como lo muestra la UI
	ApprovalComment string
	Data            json.RawMessage
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReviewStatus traduce el estado propio al estado canónico de revisión.
func (d *SSTDocument) ReviewStatus() approval.Status {
	switch d.Status {
	case DocStatusDraft:
		return approval.StatusDraft
	case DocStatusPending:
		return approval.StatusPending
	case DocStatusApproved:
		return approval.StatusApproved
	case DocStatusRejected:
		return approval.StatusRejected
	case DocStatusArchived:
		return approval.StatusArchived
	default:
		return approval.StatusDraft
	}
}

// SetReviewStatus aplica el estado canónico sobre el valor persistido.
func (d *SSTDocument) SetReviewStatus(s approval.Status) {
	switch s {
	case approval.StatusDraft:
		d.Status = DocStatusDraft
	case approval.StatusPending:
		d.Status = DocStatusPending
	case approval.StatusApproved:
		d.Status = DocStatusApproved
	case approval.StatusRejected:
		d.Status = DocStatusRejected
	case approval.StatusArchived:
		d.Status = DocStatusArchived
	}
}
