package repository

import "github.com/jhoicas/inventario-salud/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndOrganization(email, organizationID string) (*entity.User, error)
}
