package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "administrador"
	RoleResearcher = "investigador"
	RoleTechnician = "tecnico"
)

// User usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // administrador, investigador, tecnico
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
