package entity

import (
	"encoding/json"
	"time"
)

// Company representa una organización dentro del CRM de un usuario.
// CustomFields es la bolsa slug -> valor almacenada como JSONB.
type Company struct {
	ID           string
	UserID       string
	Name         string
	Website      string
	CustomFields json.RawMessage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
