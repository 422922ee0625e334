package entity

import "time"

// Estados del protocolo de investigación.
const (
	ProtocolDraft    = "borrador"
	ProtocolSent     = "enviado"
	ProtocolApproved = "aprobado"
	ProtocolRejected = "rechazado"
)

// Protocol protocolo de investigación con flujo de aprobación. Solo un
// protocolo aprobado puede asociarse a movimientos con motivo PROTOCOLO.
type Protocol struct {
	ID    string
	Title string
	State string // borrador | enviado | aprobado | rechazado

	// Investigador responsable
	ResearcherName  string
	ResearcherDept  string
	ResearcherPhone string
	ResearcherEmail string

	// Justificación del experimento y de la cantidad de animales (3R)
	Justification   string
	Justification3R string

	EuthanasiaMethod string
	FinalDestination string

	// Totales de animales solicitados
	GroupCount    int
	PerGroupCount int
	TotalCount    int

	RejectionNote string // solo cuando el estado es rechazado

	Animals []ProtocolAnimal

	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProtocolAnimal fila de animales solicitados (especie, cantidad, sexo).
type ProtocolAnimal struct {
	ID          string
	ProtocolID  string
	SpeciesName string
	Quantity    int
	Sex         string // M | H | ND
	WeightRange string
	AgeRange    string
}

// IsApproved predicado que consume el motor de movimientos: solo "aprobado".
func (p *Protocol) IsApproved() bool {
	return p.State == ProtocolApproved
}

// CanTransition valida el flujo borrador → enviado → aprobado/rechazado.
func (p *Protocol) CanTransition(to string) bool {
	switch p.State {
	case ProtocolDraft:
		return to == ProtocolSent
	case ProtocolSent:
		return to == ProtocolApproved || to == ProtocolRejected
	}
	return false
}
