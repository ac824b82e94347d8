package approval_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zelcon/ops-api/internal/domain"
	"github.com/zelcon/ops-api/internal/domain/approval"
)

// reviewable doble de prueba mínimo.
type reviewable struct {
	status approval.Status
}

func (r *reviewable) ReviewStatus() approval.Status     { return r.status }
func (r *reviewable) SetReviewStatus(s approval.Status) { r.status = s }

func TestInitial_AutoAprobacionPorRol(t *testing.T) {
	assert.Equal(t, approval.StatusApproved, approval.Initial(true))
	assert.Equal(t, approval.StatusPending, approval.Initial(false))
}

func TestApprove_DesdePending(t *testing.T) {
	e := &reviewable{status: approval.StatusPending}
	require.NoError(t, approval.Approve(e, approval.StatusApproved, nil))
	assert.Equal(t, approval.StatusApproved, e.status)
}

func TestApprove_HaciaDelivered(t *testing.T) {
	e := &reviewable{status: approval.StatusPending}
	require.NoError(t, approval.Approve(e, approval.StatusDelivered, nil))
	assert.Equal(t, approval.StatusDelivered, e.status)
}

func TestApprove_EstadoFinalInvalido(t *testing.T) {
	e := &reviewable{status: approval.StatusPending}
	err := approval.Approve(e, approval.StatusRejected, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, approval.StatusPending, e.status, "el estado no debe cambiar")
}

func TestApprove_NoDesdePending(t *testing.T) {
	for _, from := range []approval.Status{
		approval.StatusDraft,
		approval.StatusApproved,
		approval.StatusRejected,
		approval.StatusDelivered,
		approval.StatusArchived,
	} {
		e := &reviewable{status: from}
		err := approval.Approve(e, approval.StatusApproved, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidState, "desde %s", from)
		assert.Equal(t, from, e.status)
	}
}

func TestApprove_EfectoFallido_NoCambiaEstado(t *testing.T) {
	e := &reviewable{status: approval.StatusPending}
	boom := errors.New("stock insuficiente")
	err := approval.Approve(e, approval.StatusDelivered, func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, approval.StatusPending, e.status,
		"si el efecto falla la transición no debe confirmarse")
}

func TestReject_ComentarioObligatorio(t *testing.T) {
	e := &reviewable{status: approval.StatusPending}
	assert.ErrorIs(t, approval.Reject(e, ""), domain.ErrInvalidInput)
	assert.ErrorIs(t, approval.Reject(e, "   "), domain.ErrInvalidInput)
	assert.Equal(t, approval.StatusPending, e.status)

	require.NoError(t, approval.Reject(e, "falta firma del supervisor"))
	assert.Equal(t, approval.StatusRejected, e.status)
}

func TestReject_NoDesdePending(t *testing.T) {
	e := &reviewable{status: approval.StatusRejected}
	assert.ErrorIs(t, approval.Reject(e, "motivo"), domain.ErrInvalidState)
}

func TestArchive_SoloDesdeApproved(t *testing.T) {
	e := &reviewable{status: approval.StatusApproved}
	require.NoError(t, approval.Archive(e))
	assert.Equal(t, approval.StatusArchived, e.status)

	e2 := &reviewable{status: approval.StatusPending}
	assert.ErrorIs(t, approval.Archive(e2), domain.ErrInvalidState)
}
