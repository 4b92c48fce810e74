package entity

import "time"

// Location representa una sede donde se almacena inventario: un hospital,
// un puesto de salud o un centro de acopio de la organización.
type Location struct {
	ID             string
	OrganizationID string
	Code           string // código corto único por organización, ej. "HOSP-NORTE"
	Name           string
	Region         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
