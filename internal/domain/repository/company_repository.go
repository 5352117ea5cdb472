package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company.
// Operaciones acotadas al userID (tenant).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(userID, id string) (*entity.Company, error)
	ListByUser(userID string) ([]*entity.Company, error)
	Update(company *entity.Company) error
	Delete(userID, id string) error
}
