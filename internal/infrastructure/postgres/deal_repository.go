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

var _ repository.DealRepository = (*DealRepo)(nil)

// DealRepo implementación de DealRepository sobre PostgreSQL (usable con pool o tx).
type DealRepo struct {
	q Querier
}

// NewDealRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDealRepository(q Querier) *DealRepo {
	return &DealRepo{q: q}
}

// Create persiste un nuevo negocio. Stage se guarda tal cual (texto libre).
func (r *DealRepo) Create(deal *entity.Deal) error {
	query := `
		INSERT INTO deals (id, user_id, contact_id, company_id, title, value, stage, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		deal.ID, deal.UserID, deal.ContactID, deal.CompanyID, deal.Title, deal.Value, deal.Stage,
		deal.CreatedAt, deal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert deal: %w", err)
	}
	return nil
}

// GetByID obtiene un negocio acotado al usuario, con nombres de contacto y
// empresa asociados.
func (r *DealRepo) GetByID(userID, id string) (*entity.Deal, error) {
	query := `
		SELECT d.id, d.user_id, d.contact_id, d.company_id, d.title, d.value, d.stage,
		       COALESCE(c.name, ''), COALESCE(co.name, ''), d.created_at, d.updated_at
		FROM deals d
		LEFT JOIN contacts c ON d.contact_id = c.id
		LEFT JOIN companies co ON d.company_id = co.id
		WHERE d.id = $1 AND d.user_id = $2`
	var d entity.Deal
	err := r.q.QueryRow(context.Background(), query, id, userID).Scan(
		&d.ID, &d.UserID, &d.ContactID, &d.CompanyID, &d.Title, &d.Value, &d.Stage,
		&d.ContactName, &d.CompanyName, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deal: %w", err)
	}
	return &d, nil
}

// ListByUser lista los negocios del usuario, más recientes primero.
func (r *DealRepo) ListByUser(userID string) ([]*entity.Deal, error) {
	query := `
		SELECT d.id, d.user_id, d.contact_id, d.company_id, d.title, d.value, d.stage,
		       COALESCE(c.name, ''), COALESCE(co.name, ''), d.created_at, d.updated_at
		FROM deals d
		LEFT JOIN contacts c ON d.contact_id = c.id
		LEFT JOIN companies co ON d.company_id = co.id
		WHERE d.user_id = $1
		ORDER BY d.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Deal
	for rows.Next() {
		var d entity.Deal
		if err := rows.Scan(&d.ID, &d.UserID, &d.ContactID, &d.CompanyID, &d.Title, &d.Value,
			&d.Stage, &d.ContactName, &d.CompanyName, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan deal: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza un negocio acotado al usuario.
func (r *DealRepo) Update(deal *entity.Deal) error {
	query := `
		UPDATE deals
		SET contact_id = $3, company_id = $4, title = $5, value = $6, stage = $7, updated_at = $8
		WHERE id = $1 AND user_id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		deal.ID, deal.UserID, deal.ContactID, deal.CompanyID, deal.Title, deal.Value, deal.Stage,
		deal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update deal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un negocio acotado al usuario.
func (r *DealRepo) Delete(userID, id string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM deals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete deal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
