package entity

import "time"

// Item representa un insumo crítico del catálogo (medicamento, kit, material médico).
// LeadTimeDays es el tiempo de reabastecimiento prometido por el proveedor; un item
// sin lead time (cero) queda excluido del cálculo de estado de stock.
type Item struct {
	ID             string
	OrganizationID string
	Code           string // código único por organización, ej. "MED-AMOX-500"
	Name           string
	Unit           string // unidad de medida: caja, frasco, unidad
	LeadTimeDays   int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
