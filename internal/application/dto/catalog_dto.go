package dto

// CreateSpeciesRequest body para POST /api/species.
type CreateSpeciesRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateStrainRequest body para POST /api/species/:id/strains.
type CreateStrainRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CreateCageRequest body para POST /api/cages.
type CreateCageRequest struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Capacity int    `json:"capacity"`
}
