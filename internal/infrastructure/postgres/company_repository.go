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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository sobre PostgreSQL (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa con su bolsa custom_fields tal cual.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, user_id, name, website, custom_fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.UserID, company.Name, company.Website,
		company.CustomFields, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa acotada al usuario.
func (r *CompanyRepo) GetByID(userID, id string) (*entity.Company, error) {
	query := `
		SELECT id, user_id, name, website, COALESCE(custom_fields, '{}'::jsonb), created_at, updated_at
		FROM companies WHERE id = $1 AND user_id = $2`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id, userID).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Website, &c.CustomFields, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// ListByUser lista las empresas del usuario, más recientes primero.
func (r *CompanyRepo) ListByUser(userID string) ([]*entity.Company, error) {
	query := `
		SELECT id, user_id, name, website, COALESCE(custom_fields, '{}'::jsonb), created_at, updated_at
		FROM companies WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Website, &c.CustomFields,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una empresa acotada al usuario. La bolsa custom_fields se
// escribe completa.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies
		SET name = $3, website = $4, custom_fields = $5, updated_at = $6
		WHERE id = $1 AND user_id = $2`
	tag, err := r.q.Exec(context.Background(), query,
		company.ID, company.UserID, company.Name, company.Website,
		company.CustomFields, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una empresa acotada al usuario. Contactos y deals que la
// referencian quedan con company_id en NULL vía la regla FK.
func (r *CompanyRepo) Delete(userID, id string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM companies WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
