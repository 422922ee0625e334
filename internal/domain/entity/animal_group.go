package entity

import "time"

// AnimalGroup unidad de inventario por jaula (mixto machos/hembras).
// La identidad (especie, cepa, jaula) es única entre grupos activos e
// inactivos por igual; los saldos solo los muta el motor de movimientos.
type AnimalGroup struct {
	ID         string
	SpeciesID  string
	StrainID   *string // opcional
	CageID     string
	Males      int
	Females    int
	MinMales   int
	MinFemales int
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Total cantidad total del grupo (derivada, nunca se almacena).
func (g *AnimalGroup) Total() int {
	return g.Males + g.Females
}

// BelowMinMales machos bajo el mínimo (estrictamente menor: 2 < 2 es falso).
func (g *AnimalGroup) BelowMinMales() bool {
	return g.Males < g.MinMales
}

// BelowMinFemales hembras bajo el mínimo (estrictamente menor).
func (g *AnimalGroup) BelowMinFemales() bool {
	return g.Females < g.MinFemales
}
