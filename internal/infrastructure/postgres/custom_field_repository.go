package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.CustomFieldRepository = (*CustomFieldRepo)(nil)

// CustomFieldRepo implementación de CustomFieldRepository sobre PostgreSQL
// (usable con pool o tx).
type CustomFieldRepo struct {
	q Querier
}

// NewCustomFieldRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomFieldRepository(q Querier) *CustomFieldRepo {
	return &CustomFieldRepo{q: q}
}

// Create persiste la definición asignando display_order = MAX+1 dentro de
// (user, entity_type) en la misma sentencia: una sola operación atómica.
// Dos Create concurrentes con el mismo slug los resuelve la constraint
// UNIQUE(user_id, entity_type, slug); el perdedor recibe ErrDuplicate.
func (r *CustomFieldRepo) Create(field *entity.CustomField) error {
	query := `
		INSERT INTO custom_fields (id, user_id, entity_type, field_name, slug, field_type, display_order, created_at)
		SELECT $1, $2, $3, $4, $5, $6,
		       COALESCE(MAX(display_order), 0) + 1, $7
		FROM custom_fields WHERE user_id = $2 AND entity_type = $3
		RETURNING display_order`
	err := r.q.QueryRow(context.Background(), query,
		field.ID, field.UserID, field.EntityType, field.FieldName, field.Slug, field.FieldType,
		field.CreatedAt,
	).Scan(&field.DisplayOrder)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert custom field: %w", err)
	}
	return nil
}

// ListByUser lista las definiciones del usuario ordenadas por
// (entity_type, display_order, field_name). entityType vacío = sin filtro.
func (r *CustomFieldRepo) ListByUser(userID, entityType string) ([]*entity.CustomField, error) {
	query := `
		SELECT id, user_id, entity_type, field_name, slug, field_type, display_order, created_at
		FROM custom_fields
		WHERE user_id = $1 AND ($2 = '' OR entity_type = $2)
		ORDER BY entity_type, display_order, field_name`
	rows, err := r.q.Query(context.Background(), query, userID, entityType)
	if err != nil {
		return nil, fmt.Errorf("list custom fields: %w", err)
	}
	defer rows.Close()
	var list []*entity.CustomField
	for rows.Next() {
		var f entity.CustomField
		if err := rows.Scan(&f.ID, &f.UserID, &f.EntityType, &f.FieldName, &f.Slug,
			&f.FieldType, &f.DisplayOrder, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan custom field: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete elimina la definición acotada al usuario. ErrNotFound si no existe o
// es de otro usuario. Las bolsas ya almacenadas no se tocan.
func (r *CustomFieldRepo) Delete(userID, id string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM custom_fields WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete custom field: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
