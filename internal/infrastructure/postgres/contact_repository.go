package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación de ContactRepository sobre PostgreSQL (usable con pool o tx).
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

// Create persiste un nuevo contacto con su bolsa custom_fields tal cual.
func (r *ContactRepo) Create(contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, user_id, company_id, name, email, phone, custom_fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		contact.ID, contact.UserID, contact.CompanyID, contact.Name, contact.Email, contact.Phone,
		contact.CustomFields, contact.CreatedAt, contact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// GetByID obtiene un contacto acotado al usuario. La bolsa se lee con
// COALESCE para que nunca llegue NULL al dominio.
func (r *ContactRepo) GetByID(userID, id string) (*entity.Contact, error) {
	query := `
		SELECT c.id, c.user_id, c.company_id, c.name, c.email, c.phone,
		       COALESCE(c.custom_fields, '{}'::jsonb), COALESCE(co.name, ''),
		       c.created_at, c.updated_at
		FROM contacts c
		LEFT JOIN companies co ON c.company_id = co.id
		WHERE c.id = $1 AND c.user_id = $2`
	var c entity.Contact
	err := r.q.QueryRow(context.Background(), query, id, userID).Scan(
		&c.ID, &c.UserID, &c.CompanyID, &c.Name, &c.Email, &c.Phone,
		&c.CustomFields, &c.CompanyName, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &c, nil
}

// ListByUser lista los contactos del usuario, más recientes primero, con el
// nombre de la empresa asociada.
func (r *ContactRepo) ListByUser(userID string) ([]*entity.Contact, error) {
	query := `
		SELECT c.id, c.user_id, c.company_id, c.name, c.email, c.phone,
		       COALESCE(c.custom_fields, '{}'::jsonb), COALESCE(co.name, ''),
		       c.created_at, c.updated_at
		FROM contacts c
		LEFT JOIN companies co ON c.company_id = co.id
		WHERE c.user_id = $1
		ORDER BY c.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contact
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.CompanyID, &c.Name, &c.Email, &c.Phone,
			&c.CustomFields, &c.CompanyName, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un contacto acotado al usuario. La bolsa custom_fields se
// escribe completa: el merge parcial ya ocurrió en el caso de uso.
func (r *ContactRepo) Update(contact *entity.Contact) error {
	query := `
		UPDATE contacts
		SET company_id = $3, name = $4, email = $5, phone = $6, custom_fields = $7, updated_at = $8
		WHERE id = $1 AND user_id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		contact.ID, contact.UserID, contact.CompanyID, contact.Name, contact.Email, contact.Phone,
		contact.CustomFields, contact.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un contacto acotado al usuario. Los deals dependientes quedan
// con contact_id en NULL vía la regla FK.
func (r *ContactRepo) Delete(userID, id string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM contacts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
