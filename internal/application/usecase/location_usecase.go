package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-salud/internal/application/dto"
	"github.com/jhoicas/inventario-salud/internal/domain"
	"github.com/jhoicas/inventario-salud/internal/domain/entity"
	"github.com/jhoicas/inventario-salud/internal/domain/repository"
)

// LocationUseCase aplica reglas de negocio para sedes.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create crea una sede para la organización del usuario autenticado.
// Devuelve domain.ErrDuplicate si el código ya existe en la organización.
func (uc *LocationUseCase) Create(organizationID string, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(organizationID, in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	loc := &entity.Location{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		Code:           in.Code,
		Name:           in.Name,
		Region:         in.Region,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// GetByID obtiene una sede validando que pertenezca a la organización.
func (uc *LocationUseCase) GetByID(organizationID, id string) (*dto.LocationResponse, error) {
	loc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, nil
	}
	if loc.OrganizationID != organizationID {
		return nil, domain.ErrForbidden
	}
	return toLocationResponse(loc), nil
}

// List lista las sedes de la organización con paginación.
func (uc *LocationUseCase) List(organizationID string, limit, offset int) (*dto.LocationListResponse, error) {
	list, err := uc.repo.ListByOrganization(organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:             l.ID,
		OrganizationID: l.OrganizationID,
		Code:           l.Code,
		Name:           l.Name,
		Region:         l.Region,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
