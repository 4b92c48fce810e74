package repository

import "github.com/jhoicas/inventario-salud/internal/domain/entity"

// LocationRepository define el puerto de persistencia para sedes (DIP).
type LocationRepository interface {
	Create(loc *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	GetByCode(organizationID, code string) (*entity.Location, error)
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Location, error)
	CountByOrganization(organizationID string) (int, error)
}
