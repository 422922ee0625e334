package dto

import "time"

// CreateGroupRequest body para POST /api/groups.
type CreateGroupRequest struct {
	SpeciesID  string  `json:"species_id"`
	StrainID   *string `json:"strain_id,omitempty"`
	CageID     string  `json:"cage_id"`
	Males      int     `json:"males"`
	Females    int     `json:"females"`
	MinMales   int     `json:"min_males"`
	MinFemales int     `json:"min_females"`
}

// UpdateGroupRequest body para PUT /api/groups/:id. Los saldos no se tocan
// por aquí: solo los muta el motor de movimientos.
type UpdateGroupRequest struct {
	MinMales   int  `json:"min_males"`
	MinFemales int  `json:"min_females"`
	Active     bool `json:"active"`
}

// GroupResponse representación de un grupo animal.
type GroupResponse struct {
	ID         string    `json:"id"`
	SpeciesID  string    `json:"species_id"`
	StrainID   *string   `json:"strain_id,omitempty"`
	CageID     string    `json:"cage_id"`
	Males      int       `json:"males"`
	Females    int       `json:"females"`
	Total      int       `json:"total"`
	MinMales   int       `json:"min_males"`
	MinFemales int       `json:"min_females"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// GroupListResponse listado con totales agregados (como la vista original).
type GroupListResponse struct {
	Groups       []GroupResponse `json:"groups"`
	TotalMales   int             `json:"total_males"`
	TotalFemales int             `json:"total_females"`
	Total        int             `json:"total"`
}

// RegisterGroupMovementRequest body para POST /api/groups/:id/movements.
type RegisterGroupMovementRequest struct {
	Category          string  `json:"category"`
	Reason            string  `json:"reason"`
	Males             int     `json:"males"`
	Females           int     `json:"females"`
	ProtocolID        *string `json:"protocol_id,omitempty"`
	DestinationCageID *string `json:"destination_cage_id,omitempty"`
	Note              string  `json:"note,omitempty"`
}

// GroupMovementResponse representación de un movimiento de grupo.
type GroupMovementResponse struct {
	ID                string    `json:"id"`
	GroupID           string    `json:"group_id"`
	Category          string    `json:"category"`
	Reason            string    `json:"reason"`
	Males             int       `json:"males"`
	Females           int       `json:"females"`
	ProtocolID        *string   `json:"protocol_id,omitempty"`
	DestinationCageID *string   `json:"destination_cage_id,omitempty"`
	Note              string    `json:"note,omitempty"`
	Date              time.Time `json:"date"`
	CreatedBy         *string   `json:"created_by,omitempty"`
}
