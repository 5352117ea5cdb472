package entity

import "time"

// Tipos de entidad que soportan campos personalizados.
const (
	EntityTypeContact = "contact"
	EntityTypeCompany = "company"
)

// Tipos de dato válidos para un campo personalizado. Un tipo no reconocido
// cae a "text" en lugar de rechazarse.
const (
	FieldTypeText   = "text"
	FieldTypeNumber = "number"
	FieldTypeEmail  = "email"
	FieldTypePhone  = "phone"
	FieldTypeDate   = "date"
	FieldTypeURL    = "url"
)

// CustomField define un campo personalizado que el usuario adjunta a sus
// contactos o empresas. Slug se deriva de FieldName al crear y es inmutable:
// es la clave de almacenamiento dentro de la bolsa custom_fields de cada
// entidad. Único por (user, entity_type, slug).
// Borrar la definición no toca los valores ya guardados en las bolsas.
type CustomField struct {
	ID           string
	UserID       string
	EntityType   string // contact | company
	FieldName    string
	Slug         string
	FieldType    string // text, number, email, phone, date, url
	DisplayOrder int
	CreatedAt    time.Time
}

// ValidEntityType indica si et es un tipo de entidad con soporte de campos
// personalizados.
func ValidEntityType(et string) bool {
	return et == EntityTypeContact || et == EntityTypeCompany
}

// NormalizeFieldType devuelve ft si es un tipo válido; si no, "text".
func NormalizeFieldType(ft string) string {
	switch ft {
	case FieldTypeText, FieldTypeNumber, FieldTypeEmail, FieldTypePhone, FieldTypeDate, FieldTypeURL:
		return ft
	default:
		return FieldTypeText
	}
}
