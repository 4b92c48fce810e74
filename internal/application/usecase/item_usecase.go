package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-salud/internal/application/dto"
	"github.com/jhoicas/inventario-salud/internal/domain"
	"github.com/jhoicas/inventario-salud/internal/domain/entity"
	"github.com/jhoicas/inventario-salud/internal/domain/repository"
)

// ItemUseCase aplica reglas de negocio para el catálogo de insumos.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un insumo. El lead time no puede ser negativo (error de validación);
// cero es válido pero excluye el insumo del cálculo de estado hasta definirlo.
func (uc *ItemUseCase) Create(organizationID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Code == "" || in.Name == "" || in.LeadTimeDays < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(organizationID, in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.Item{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		Code:           in.Code,
		Name:           in.Name,
		Unit:           in.Unit,
		LeadTimeDays:   in.LeadTimeDays,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un insumo validando que pertenezca a la organización.
func (uc *ItemUseCase) GetByID(organizationID, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if item.OrganizationID != organizationID {
		return nil, domain.ErrForbidden
	}
	return toItemResponse(item), nil
}

// Update actualiza nombre, unidad y lead time de un insumo.
func (uc *ItemUseCase) Update(organizationID, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if in.LeadTimeDays < 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.OrganizationID != organizationID {
		return nil, domain.ErrForbidden
	}
	if in.Name != "" {
		item.Name = in.Name
	}
	if in.Unit != "" {
		item.Unit = in.Unit
	}
	item.LeadTimeDays = in.LeadTimeDays
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista los insumos de la organización con paginación.
func (uc *ItemUseCase) List(organizationID string, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.ListByOrganization(organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:             i.ID,
		OrganizationID: i.OrganizationID,
		Code:           i.Code,
		Name:           i.Name,
		Unit:           i.Unit,
		LeadTimeDays:   i.LeadTimeDays,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}
