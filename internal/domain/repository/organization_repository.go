package repository

import "github.com/jhoicas/inventario-salud/internal/domain/entity"

// OrganizationRepository define el puerto de persistencia para organizaciones (DIP).
type OrganizationRepository interface {
	Create(org *entity.Organization) error
	GetByID(id string) (*entity.Organization, error)
	GetByName(name string) (*entity.Organization, error)
	List(limit, offset int) ([]*entity.Organization, error)
}
