package dto

import "time"

// ProtocolAnimalDTO fila de animales solicitados en un protocolo.
type ProtocolAnimalDTO struct {
	SpeciesName string `json:"species_name"`
	Quantity    int    `json:"quantity"`
	Sex         string `json:"sex"` // M | H | ND
	WeightRange string `json:"weight_range,omitempty"`
	AgeRange    string `json:"age_range,omitempty"`
}

// CreateProtocolRequest body para POST /api/protocols (crea un borrador).
type CreateProtocolRequest struct {
	Title            string              `json:"title"`
	ResearcherName   string              `json:"researcher_name"`
	ResearcherDept   string              `json:"researcher_dept,omitempty"`
	ResearcherPhone  string              `json:"researcher_phone,omitempty"`
	ResearcherEmail  string              `json:"researcher_email,omitempty"`
	Justification    string              `json:"justification"`
	Justification3R  string              `json:"justification_3r"`
	EuthanasiaMethod string              `json:"euthanasia_method,omitempty"`
	FinalDestination string              `json:"final_destination,omitempty"`
	GroupCount       int                 `json:"group_count"`
	PerGroupCount    int                 `json:"per_group_count"`
	Animals          []ProtocolAnimalDTO `json:"animals,omitempty"`
}

// RejectProtocolRequest body para POST /api/protocols/:id/reject.
type RejectProtocolRequest struct {
	Note string `json:"note"`
}

// ProtocolResponse representación de un protocolo.
type ProtocolResponse struct {
	ID               string              `json:"id"`
	Title            string              `json:"title"`
	State            string              `json:"state"`
	ResearcherName   string              `json:"researcher_name"`
	ResearcherEmail  string              `json:"researcher_email,omitempty"`
	Justification    string              `json:"justification"`
	Justification3R  string              `json:"justification_3r"`
	EuthanasiaMethod string              `json:"euthanasia_method,omitempty"`
	GroupCount       int                 `json:"group_count"`
	PerGroupCount    int                 `json:"per_group_count"`
	TotalCount       int                 `json:"total_count"`
	RejectionNote    string              `json:"rejection_note,omitempty"`
	Animals          []ProtocolAnimalDTO `json:"animals,omitempty"`
	CreatedBy        string              `json:"created_by"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}
