package dto

import (
	"encoding/json"
	"time"
)

// CreateCompanyRequest entrada para crear una empresa. CustomFields acepta
// cualquier objeto slug -> valor; si falta o no es un objeto JSON se sustituye
// por {}.
type CreateCompanyRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Website      string          `json:"website"`
	CustomFields json.RawMessage `json:"custom_fields"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales,
// semántica parcial). CustomFields presente REEMPLAZA la bolsa completa;
// ausente o null la deja intacta (para vaciarla se envía {}).
type UpdateCompanyRequest struct {
	Name         *string         `json:"name"`
	Website      *string         `json:"website"`
	CustomFields json.RawMessage `json:"custom_fields"`
}

// CompanyResponse salida de una empresa. CustomFields siempre es un objeto.
type CompanyResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Website      string          `json:"website"`
	CustomFields json.RawMessage `json:"custom_fields"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
