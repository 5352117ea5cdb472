package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// DealRepository define el puerto de persistencia para Deal.
// Operaciones acotadas al userID (tenant).
type DealRepository interface {
	Create(deal *entity.Deal) error
	GetByID(userID, id string) (*entity.Deal, error)
	ListByUser(userID string) ([]*entity.Deal, error)
	Update(deal *entity.Deal) error
	Delete(userID, id string) error
}
