package dto

import (
	"encoding/json"
	"time"
)

// CreateContactRequest entrada para crear un contacto. CustomFields acepta
// cualquier objeto slug -> valor; si falta o no es un objeto JSON se sustituye
// por {} sin validar contra las definiciones registradas.
type CreateContactRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	CompanyID    *string         `json:"company_id"`
	CustomFields json.RawMessage `json:"custom_fields"`
}

// UpdateContactRequest entrada para actualizar un contacto (campos opcionales,
// semántica parcial). Si CustomFields viene presente REEMPLAZA la bolsa
// completa; si falta o es null, la bolsa almacenada queda intacta (para
// vaciarla se envía {}).
type UpdateContactRequest struct {
	Name         *string         `json:"name"`
	Email        *string         `json:"email"`
	Phone        *string         `json:"phone"`
	CompanyID    *string         `json:"company_id"`
	CustomFields json.RawMessage `json:"custom_fields"`
}

// ContactResponse salida de un contacto. CustomFields siempre es un objeto
// (nunca null).
type ContactResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	CompanyID    *string         `json:"company_id"`
	CompanyName  string          `json:"company_name,omitempty"`
	CustomFields json.RawMessage `json:"custom_fields"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
