package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDealRequest entrada para crear un negocio. Value ausente vale 0;
// Stage ausente vale "lead" (texto libre, sin máquina de estados).
type CreateDealRequest struct {
	Title     string          `json:"title" validate:"required,min=1,max=200"`
	Value     decimal.Decimal `json:"value"`
	Stage     string          `json:"stage"`
	ContactID *string         `json:"contact_id"`
	CompanyID *string         `json:"company_id"`
}

// UpdateDealRequest entrada para actualizar un negocio (campos opcionales,
// semántica parcial). ContactID/CompanyID con cadena vacía desvinculan la
// referencia.
type UpdateDealRequest struct {
	Title     *string          `json:"title"`
	Value     *decimal.Decimal `json:"value"`
	Stage     *string          `json:"stage"`
	ContactID *string          `json:"contact_id"`
	CompanyID *string          `json:"company_id"`
}

// DealResponse salida de un negocio.
type DealResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Value       decimal.Decimal `json:"value"`
	Stage       string          `json:"stage"`
	ContactID   *string         `json:"contact_id"`
	CompanyID   *string         `json:"company_id"`
	ContactName string          `json:"contact_name,omitempty"`
	CompanyName string          `json:"company_name,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
