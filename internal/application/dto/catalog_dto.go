package dto

import "time"

// ── Organizations ─────────────────────────────────────────────────────────────

// CreateOrganizationRequest body para POST /api/organizations.
type CreateOrganizationRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Email   string `json:"email"`
}

// OrganizationResponse representación HTTP de una organización.
type OrganizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrganizationListResponse respuesta paginada de organizaciones.
type OrganizationListResponse struct {
	Items []OrganizationResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// ── Locations ─────────────────────────────────────────────────────────────────

// CreateLocationRequest body para POST /api/locations.
type CreateLocationRequest struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// LocationResponse representación HTTP de una sede.
type LocationResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	Region         string    `json:"region"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// LocationListResponse respuesta paginada de sedes.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ── Items ─────────────────────────────────────────────────────────────────────

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Unit         string `json:"unit"`
	LeadTimeDays int    `json:"lead_time_days"`
}

// UpdateItemRequest body para PUT /api/items/:id. Solo campos mutables.
type UpdateItemRequest struct {
	Name         string `json:"name"`
	Unit         string `json:"unit"`
	LeadTimeDays int    `json:"lead_time_days"`
}

// ItemResponse representación HTTP de un insumo del catálogo.
type ItemResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	Unit           string    `json:"unit"`
	LeadTimeDays   int       `json:"lead_time_days"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ItemListResponse respuesta paginada de insumos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
