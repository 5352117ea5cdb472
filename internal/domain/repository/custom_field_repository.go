package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// CustomFieldRepository define el puerto de persistencia para las definiciones
// de campos personalizados.
//
// Create asigna display_order = MAX(display_order)+1 dentro de
// (user, entity_type) en la misma sentencia INSERT; las carreras sobre el slug
// las resuelve la constraint UNIQUE(user_id, entity_type, slug) y el perdedor
// recibe ErrDuplicate.
type CustomFieldRepository interface {
	Create(field *entity.CustomField) error
	// ListByUser devuelve las definiciones del usuario ordenadas por
	// (entity_type, display_order, field_name). entityType vacío = sin filtro.
	ListByUser(userID, entityType string) ([]*entity.CustomField, error)
	// Delete elimina la definición acotada al usuario. ErrNotFound si no
	// existe o pertenece a otro usuario. No toca las bolsas ya almacenadas.
	Delete(userID, id string) error
}
