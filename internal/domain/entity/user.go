package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleLogistica = "logistica" // registra conteos y consumos
	RoleConsulta  = "consulta"  // solo lectura del dashboard
)

// User representa un usuario del sistema (pertenece a una Organization).
type User struct {
	ID             string
	OrganizationID string
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	Name           string
	Role           string // admin, logistica, consulta
	Status         string // active, inactive, suspended
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
