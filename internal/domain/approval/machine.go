// Package approval implementa la máquina de estados compartida del ciclo de
// revisión: Pending -> {Approved | Rejected}, con estados de cola opcionales
// (Delivered para solicitudes de almacén, Archived para documentos SST).
// Las entidades traducen su valor de estado propio al estado canónico vía la
// interfaz Reviewable; la legalidad de cada transición se decide aquí y en
// ningún otro sitio.
package approval

import (
	"strings"

	"github.com/zelcon/ops-api/internal/domain"
)

// Status estado canónico del ciclo de revisión.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusDelivered Status = "delivered"
	StatusArchived  Status = "archived"
)

// Reviewable lo implementa toda entidad que pasa por el ciclo de revisión.
type Reviewable interface {
	ReviewStatus() Status
	SetReviewStatus(Status)
}

// SideEffect se ejecuta después de validar la transición y antes de
// confirmarla. Si devuelve error, la entidad queda sin cambios: o cambian el
// estado y el efecto juntos, o no cambia nada.
type SideEffect func() error

// Initial devuelve el estado inicial de una entidad recién presentada.
// selfApproving activa el atajo de auto-aprobación por rol.
func Initial(selfApproving bool) Status {
	if selfApproving {
		return StatusApproved
	}
	return StatusPending
}

// Approve valida Pending -> final (Approved o Delivered), aplica el efecto
// secundario y recién entonces confirma el nuevo estado.
func Approve(e Reviewable, final Status, effect SideEffect) error {
	if final != StatusApproved && final != StatusDelivered {
		return domain.ErrInvalidState
	}
	if e.ReviewStatus() != StatusPending {
		return domain.ErrInvalidState
	}
	if effect != nil {
		if err := effect(); err != nil {
			return err
		}
	}
	e.SetReviewStatus(final)
	return nil
}

// Reject valida Pending -> Rejected. El comentario de rechazo es obligatorio.
func Reject(e Reviewable, comment string) error {
	if strings.TrimSpace(comment) == "" {
		return domain.ErrInvalidInput
	}
	if e.ReviewStatus() != StatusPending {
		return domain.ErrInvalidState
	}
	e.SetReviewStatus(StatusRejected)
	return nil
}

// Archive valida Approved -> Archived (solo documentos).
func Archive(e Reviewable) error {
	if e.ReviewStatus() != StatusApproved {
		return domain.ErrInvalidState
	}
	e.SetReviewStatus(StatusArchived)
	return nil
}
