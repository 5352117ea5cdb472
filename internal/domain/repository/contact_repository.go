package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// ContactRepository define el puerto de persistencia para Contact.
// Todas las operaciones de lectura/escritura por ID están acotadas al userID
// (tenant): un miss y un registro ajeno son indistinguibles (ErrNotFound).
type ContactRepository interface {
	Create(contact *entity.Contact) error
	GetByID(userID, id string) (*entity.Contact, error)
	ListByUser(userID string) ([]*entity.Contact, error)
	Update(contact *entity.Contact) error
	Delete(userID, id string) error
}
