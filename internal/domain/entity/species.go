package entity

import "time"

// Species especie animal del bioterio (ej. Mus musculus).
type Species struct {
	ID          string
	Name        string // único
	Description string
	CreatedAt   time.Time
}

// Strain cepa de una especie (ej. BALB/c). Única por especie.
type Strain struct {
	ID          string
	SpeciesID   string
	Name        string
	Description string
	CreatedAt   time.Time
}
