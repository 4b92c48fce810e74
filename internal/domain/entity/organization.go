package entity

import "time"

// Organization representa una organización/tenant del sistema: una red hospitalaria,
// una ONG o un programa de salud que administra sus propias sedes e insumos.
type Organization struct {
	ID        string
	Name      string
	Country   string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
