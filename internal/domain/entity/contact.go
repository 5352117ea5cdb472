package entity

import (
	"encoding/json"
	"time"
)

// Contact representa una persona del CRM. CompanyID es una asociación opcional;
// al borrar la empresa la FK lo deja en NULL (detach, no cascade).
// CustomFields es la bolsa slug -> valor almacenada como JSONB; el servidor no
// la valida contra las definiciones de custom_fields.
type Contact struct {
	ID           string
	UserID       string
	CompanyID    *string
	Name         string
	Email        string
	Phone        string
	CustomFields json.RawMessage
	CompanyName  string // derivado del JOIN con companies, no se persiste
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
