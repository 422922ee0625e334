package movements_test

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Bioterio-api/internal/domain"
	"github.com/jhoicas/Bioterio-api/internal/domain/entity"
	"github.com/jhoicas/Bioterio-api/internal/domain/repository"
)

// Fakes en memoria para los repositorios del motor de movimientos. El
// fakeTxRunner toma una instantánea antes de fn y la restaura ante error,
// imitando el rollback de la transacción real.

type fakeGroupRepo struct {
	groups map[string]*entity.AnimalGroup
	seq    int
}

func newFakeGroupRepo(groups ...*entity.AnimalGroup) *fakeGroupRepo {
	r := &fakeGroupRepo{groups: map[string]*entity.AnimalGroup{}}
	for _, g := range groups {
		cp := *g
		r.groups[g.ID] = &cp
	}
	return r
}

func (r *fakeGroupRepo) clone(g *entity.AnimalGroup) *entity.AnimalGroup {
	if g == nil {
		return nil
	}
	cp := *g
	return &cp
}

func (r *fakeGroupRepo) snapshot() map[string]entity.AnimalGroup {
	s := map[string]entity.AnimalGroup{}
	for id, g := range r.groups {
		s[id] = *g
	}
	return s
}

func (r *fakeGroupRepo) restore(s map[string]entity.AnimalGroup) {
	r.groups = map[string]*entity.AnimalGroup{}
	for id, g := range s {
		cp := g
		r.groups[id] = &cp
	}
}

func (r *fakeGroupRepo) Create(_ context.Context, g *entity.AnimalGroup) error {
	if g.ID == "" {
		r.seq++
		g.ID = fmt.Sprintf("auto-g%d", r.seq)
	}
	r.groups[g.ID] = r.clone(g)
	return nil
}

func (r *fakeGroupRepo) GetByID(_ context.Context, id string) (*entity.AnimalGroup, error) {
	return r.clone(r.groups[id]), nil
}

func (r *fakeGroupRepo) GetForUpdate(_ context.Context, id string) (*entity.AnimalGroup, error) {
	return r.clone(r.groups[id]), nil
}

func (r *fakeGroupRepo) FindByKey(_ context.Context, speciesID string, strainID *string, cageID string) (*entity.AnimalGroup, error) {
	return r.clone(r.findByKey(speciesID, strainID, cageID)), nil
}

func (r *fakeGroupRepo) findByKey(speciesID string, strainID *string, cageID string) *entity.AnimalGroup {
	ids := make([]string, 0, len(r.groups))
	for id := range r.groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		g := r.groups[id]
		if g.SpeciesID != speciesID || g.CageID != cageID {
			continue
		}
		if (g.StrainID == nil) != (strainID == nil) {
			continue
		}
		if strainID != nil && *g.StrainID != *strainID {
			continue
		}
		return g
	}
	return nil
}

func (r *fakeGroupRepo) FindOrCreateForUpdate(ctx context.Context, speciesID string, strainID *string, cageID string) (*entity.AnimalGroup, bool, error) {
	if g := r.findByKey(speciesID, strainID, cageID); g != nil {
		return r.clone(g), false, nil
	}
	g := &entity.AnimalGroup{SpeciesID: speciesID, StrainID: strainID, CageID: cageID, Active: true}
	if err := r.Create(ctx, g); err != nil {
		return nil, false, err
	}
	return r.clone(g), true, nil
}

func (r *fakeGroupRepo) UpdateCounts(_ context.Context, g *entity.AnimalGroup) error {
	cur, ok := r.groups[g.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Males = g.Males
	cur.Females = g.Females
	return nil
}

func (r *fakeGroupRepo) Update(_ context.Context, g *entity.AnimalGroup) error {
	cur, ok := r.groups[g.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.MinMales = g.MinMales
	cur.MinFemales = g.MinFemales
	cur.Active = g.Active
	return nil
}

func (r *fakeGroupRepo) List(_ context.Context, _ repository.GroupFilter) ([]*entity.AnimalGroup, error) {
	var out []*entity.AnimalGroup
	for _, g := range r.groups {
		out = append(out, r.clone(g))
	}
	return out, nil
}

func (r *fakeGroupRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.groups[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.groups, id)
	return nil
}

type fakeGroupMovRepo struct {
	movs []*entity.GroupMovement
	seq  int
}

func (r *fakeGroupMovRepo) snapshot() int { return len(r.movs) }

func (r *fakeGroupMovRepo) restore(n int) { r.movs = r.movs[:n] }

func (r *fakeGroupMovRepo) Create(_ context.Context, m *entity.GroupMovement) error {
	if m.ID == "" {
		r.seq++
		m.ID = fmt.Sprintf("m%d", r.seq)
	}
	cp := *m
	r.movs = append(r.movs, &cp)
	return nil
}

func (r *fakeGroupMovRepo) GetByID(_ context.Context, id string) (*entity.GroupMovement, error) {
	for _, m := range r.movs {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeGroupMovRepo) List(_ context.Context, f repository.GroupMovementFilter) ([]*entity.GroupMovement, error) {
	var out []*entity.GroupMovement
	for i := len(r.movs) - 1; i >= 0; i-- {
		m := r.movs[i]
		if f.GroupID != "" && m.GroupID != f.GroupID {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

type fakeSupplyRepo struct {
	supplies map[string]*entity.Supply
}

func newFakeSupplyRepo(supplies ...*entity.Supply) *fakeSupplyRepo {
	r := &fakeSupplyRepo{supplies: map[string]*entity.Supply{}}
	for _, s := range supplies {
		cp := *s
		r.supplies[s.ID] = &cp
	}
	return r
}

func (r *fakeSupplyRepo) clone(s *entity.Supply) *entity.Supply {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}

func (r *fakeSupplyRepo) snapshot() map[string]entity.Supply {
	s := map[string]entity.Supply{}
	for id, v := range r.supplies {
		s[id] = *v
	}
	return s
}

func (r *fakeSupplyRepo) restore(s map[string]entity.Supply) {
	r.supplies = map[string]*entity.Supply{}
	for id, v := range s {
		cp := v
		r.supplies[id] = &cp
	}
}

func (r *fakeSupplyRepo) Create(_ context.Context, s *entity.Supply) error {
	r.supplies[s.ID] = r.clone(s)
	return nil
}

func (r *fakeSupplyRepo) GetByID(_ context.Context, id string) (*entity.Supply, error) {
	return r.clone(r.supplies[id]), nil
}

func (r *fakeSupplyRepo) GetForUpdate(_ context.Context, id string) (*entity.Supply, error) {
	return r.clone(r.supplies[id]), nil
}

func (r *fakeSupplyRepo) UpdateStock(_ context.Context, s *entity.Supply) error {
	cur, ok := r.supplies[s.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.CurrentStock = s.CurrentStock
	return nil
}

func (r *fakeSupplyRepo) Update(_ context.Context, s *entity.Supply) error {
	r.supplies[s.ID] = r.clone(s)
	return nil
}

func (r *fakeSupplyRepo) List(_ context.Context, _ repository.SupplyFilter) ([]*entity.Supply, error) {
	var out []*entity.Supply
	for _, s := range r.supplies {
		out = append(out, r.clone(s))
	}
	return out, nil
}

func (r *fakeSupplyRepo) Delete(_ context.Context, id string) error {
	delete(r.supplies, id)
	return nil
}

type fakeSupplyMovRepo struct {
	movs []*entity.SupplyMovement
	seq  int
}

func (r *fakeSupplyMovRepo) snapshot() int { return len(r.movs) }

func (r *fakeSupplyMovRepo) restore(n int) { r.movs = r.movs[:n] }

func (r *fakeSupplyMovRepo) Create(_ context.Context, m *entity.SupplyMovement) error {
	if m.ID == "" {
		r.seq++
		m.ID = fmt.Sprintf("sm%d", r.seq)
	}
	cp := *m
	r.movs = append(r.movs, &cp)
	return nil
}

func (r *fakeSupplyMovRepo) GetByID(_ context.Context, id string) (*entity.SupplyMovement, error) {
	for _, m := range r.movs {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplyMovRepo) List(_ context.Context, f repository.SupplyMovementFilter) ([]*entity.SupplyMovement, error) {
	var out []*entity.SupplyMovement
	for i := len(r.movs) - 1; i >= 0; i-- {
		m := r.movs[i]
		if f.SupplyID != "" && m.SupplyID != f.SupplyID {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

type fakeCageRepo struct {
	cages map[string]*entity.Cage
}

func newFakeCageRepo(ids ...string) *fakeCageRepo {
	r := &fakeCageRepo{cages: map[string]*entity.Cage{}}
	for _, id := range ids {
		r.cages[id] = &entity.Cage{ID: id, Name: id}
	}
	return r
}

func (r *fakeCageRepo) Create(_ context.Context, c *entity.Cage) error {
	r.cages[c.ID] = c
	return nil
}

func (r *fakeCageRepo) GetByID(_ context.Context, id string) (*entity.Cage, error) {
	c, ok := r.cages[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCageRepo) List(_ context.Context) ([]*entity.Cage, error) {
	var out []*entity.Cage
	for _, c := range r.cages {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

type fakeProtocolRepo struct {
	protocols map[string]*entity.Protocol
}

func newFakeProtocolRepo(protocols ...*entity.Protocol) *fakeProtocolRepo {
	r := &fakeProtocolRepo{protocols: map[string]*entity.Protocol{}}
	for _, p := range protocols {
		cp := *p
		r.protocols[p.ID] = &cp
	}
	return r
}

func (r *fakeProtocolRepo) Create(_ context.Context, p *entity.Protocol) error {
	if p.ID == "" {
		p.ID = fmt.Sprintf("p%d", len(r.protocols)+1)
	}
	cp := *p
	r.protocols[p.ID] = &cp
	return nil
}

func (r *fakeProtocolRepo) GetByID(_ context.Context, id string) (*entity.Protocol, error) {
	p, ok := r.protocols[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProtocolRepo) Update(_ context.Context, p *entity.Protocol) error {
	cp := *p
	r.protocols[p.ID] = &cp
	return nil
}

func (r *fakeProtocolRepo) UpdateState(_ context.Context, id, state, rejectionNote string) error {
	p, ok := r.protocols[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.State = state
	p.RejectionNote = rejectionNote
	return nil
}

func (r *fakeProtocolRepo) List(_ context.Context, state string, _, _ int) ([]*entity.Protocol, error) {
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

// fakeTxRunner pasa los mismos fakes a fn y deshace sus efectos si fn falla.
type fakeTxRunner struct {
	groups     *fakeGroupRepo
	groupMovs  *fakeGroupMovRepo
	supplies   *fakeSupplyRepo
	supplyMovs *fakeSupplyMovRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	groups repository.AnimalGroupRepository,
	movs repository.GroupMovementRepository,
) error) error {
	snapGroups := t.groups.snapshot()
	snapMovs := t.groupMovs.snapshot()
	if err := fn(t.groups, t.groupMovs); err != nil {
		t.groups.restore(snapGroups)
		t.groupMovs.restore(snapMovs)
		return err
	}
	return nil
}

func (t *fakeTxRunner) RunSupply(ctx context.Context, fn func(
	supplies repository.SupplyRepository,
	movs repository.SupplyMovementRepository,
) error) error {
	snapSupplies := t.supplies.snapshot()
	snapMovs := t.supplyMovs.snapshot()
	if err := fn(t.supplies, t.supplyMovs); err != nil {
		t.supplies.restore(snapSupplies)
		t.supplyMovs.restore(snapMovs)
		return err
	}
	return nil
}
