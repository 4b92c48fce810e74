package repository

import "github.com/jhoicas/inventario-salud/internal/domain/entity"

// ItemRepository define el puerto de persistencia para el catálogo de insumos (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByCode(organizationID, code string) (*entity.Item, error)
	ListByOrganization(organizationID string, limit, offset int) ([]*entity.Item, error)
	Update(item *entity.Item) error
}
