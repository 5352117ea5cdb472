package dto

import "time"

// CreateCustomFieldRequest entrada para definir un campo personalizado.
// FieldType fuera del catálogo (text, number, email, phone, date, url) cae a
// "text" sin rechazarse.
type CreateCustomFieldRequest struct {
	EntityType string `json:"entity_type" validate:"required,oneof=contact company"`
	FieldName  string `json:"field_name" validate:"required,min=1,max=100"`
	FieldType  string `json:"field_type"`
}

// CustomFieldResponse salida de una definición de campo personalizado.
type CustomFieldResponse struct {
	ID           string    `json:"id"`
	EntityType   string    `json:"entity_type"`
	FieldName    string    `json:"field_name"`
	Slug         string    `json:"slug"`
	FieldType    string    `json:"field_type"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
