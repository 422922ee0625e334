package protocols_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bioterio-api/internal/application/protocols"
	"github.com/jhoicas/Bioterio-api/internal/domain"
	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
)

type fakeRepo struct {
	protocols map[string]*entity.Protocol
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{protocols: map[string]*entity.Protocol{}}
}

func (r *fakeRepo) Create(_ context.Context, p *entity.Protocol) error {
	if p.ID == "" {
		p.ID = fmt.Sprintf("p%d", len(r.protocols)+1)
	}
	cp := *p
	r.protocols[p.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*entity.Protocol, error) {
	p, ok := r.protocols[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) Update(_ context.Context, p *entity.Protocol) error {
	cp := *p
	r.protocols[p.ID] = &cp
	return nil
}

func (r *fakeRepo) UpdateState(_ context.Context, id, state, rejectionNote string) error {
	p, ok := r.protocols[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.State = state
	p.RejectionNote = rejectionNote
	return nil
}

func (r *fakeRepo) List(_ context.Context, state string, _, _ int) ([]*entity.Protocol, error) {
	var out []*entity.Protocol
	for _, p := range r.protocols {
		if state != "" && p.State != state {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func borrador() *entity.Protocol {
	return &entity.Protocol{
		Title:          "Efecto de dieta en BALB/c",
		ResearcherName: "Dra. Rojas",
		Justification:  "estudio nutricional",
		GroupCount:     3,
		PerGroupCount:  10,
	}
}

func TestCreateDraft_CalculaTotalYEstado(t *testing.T) {
	repo := newFakeRepo()
	uc := protocols.NewProtocolUseCase(repo)

	p, err := uc.CreateDraft(context.Background(), borrador())
	require.NoError(t, err)
	assert.Equal(t, entity.ProtocolDraft, p.State)
	assert.Equal(t, 30, p.TotalCount, "total = grupos × animales por grupo")
}

func TestCreateDraft_RequiereInvestigadorYJustificacion(t *testing.T) {
	uc := protocols.NewProtocolUseCase(newFakeRepo())

	p := borrador()
	p.ResearcherName = "  "
	_, err := uc.CreateDraft(context.Background(), p)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	p = borrador()
	p.Justification = ""
	_, err = uc.CreateDraft(context.Background(), p)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Flujo completo: borrador → enviado → aprobado. Solo entonces IsApproved.
func TestFlujo_BorradorEnviadoAprobado(t *testing.T) {
	repo := newFakeRepo()
	uc := protocols.NewProtocolUseCase(repo)

	p, err := uc.CreateDraft(context.Background(), borrador())
	require.NoError(t, err)

	ok, err := uc.IsApproved(context.Background(), p.ID)
	require.NoError(t, err)
	assert.False(t, ok, "un borrador no habilita movimientos")

	require.NoError(t, uc.Submit(context.Background(), p.ID))
	ok, _ = uc.IsApproved(context.Background(), p.ID)
	assert.False(t, ok, "enviado tampoco habilita")

	require.NoError(t, uc.Approve(context.Background(), p.ID))
	ok, err = uc.IsApproved(context.Background(), p.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFlujo_TransicionesInvalidas(t *testing.T) {
	repo := newFakeRepo()
	uc := protocols.NewProtocolUseCase(repo)

	p, _ := uc.CreateDraft(context.Background(), borrador())

	// Aprobar un borrador sin enviar → estado inválido
	assert.ErrorIs(t, uc.Approve(context.Background(), p.ID), domain.ErrInvalidState)

	require.NoError(t, uc.Submit(context.Background(), p.ID))
	// Re-enviar un enviado → estado inválido
	assert.ErrorIs(t, uc.Submit(context.Background(), p.ID), domain.ErrInvalidState)

	require.NoError(t, uc.Approve(context.Background(), p.ID))
	// Un aprobado es terminal
	assert.ErrorIs(t, uc.Reject(context.Background(), p.ID, "tarde"), domain.ErrInvalidState)
}

func TestReject_ExigeObservacion(t *testing.T) {
	repo := newFakeRepo()
	uc := protocols.NewProtocolUseCase(repo)

	p, _ := uc.CreateDraft(context.Background(), borrador())
	require.NoError(t, uc.Submit(context.Background(), p.ID))

	assert.ErrorIs(t, uc.Reject(context.Background(), p.ID, "   "), domain.ErrInvalidInput)

	require.NoError(t, uc.Reject(context.Background(), p.ID, "faltan justificaciones 3R"))
	rechazado, err := uc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProtocolRejected, rechazado.State)
	assert.Equal(t, "faltan justificaciones 3R", rechazado.RejectionNote)

	ok, _ := uc.IsApproved(context.Background(), p.ID)
	assert.False(t, ok)
}

func TestUpdateDraft_SoloEnBorrador(t *testing.T) {
	repo := newFakeRepo()
	uc := protocols.NewProtocolUseCase(repo)

	p, _ := uc.CreateDraft(context.Background(), borrador())
	require.NoError(t, uc.Submit(context.Background(), p.ID))

	p.Title = "otro título"
	assert.ErrorIs(t, uc.UpdateDraft(context.Background(), p), domain.ErrInvalidState)
}

func TestIsApproved_ProtocoloInexistente(t *testing.T) {
	uc := protocols.NewProtocolUseCase(newFakeRepo())
	ok, err := uc.IsApproved(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok, "un protocolo inexistente nunca habilita")
}
