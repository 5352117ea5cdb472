package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// ContactUseCase casos de uso CRUD para contactos.
type ContactUseCase struct {
	repo repository.ContactRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

// Create crea un contacto. La bolsa custom_fields se normaliza a objeto
// (ausente o no-objeto -> {}) y se guarda tal cual, sin validar slugs.
func (uc *ContactUseCase) Create(userID string, in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	contact := &entity.Contact{
		ID:           uuid.New().String(),
		UserID:       userID,
		CompanyID:    normalizeRef(in.CompanyID),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		CustomFields: normalizeBag(in.CustomFields),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// GetByID obtiene un contacto acotado al usuario.
func (uc *ContactUseCase) GetByID(userID, id string) (*dto.ContactResponse, error) {
	contact, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, nil
	}
	return toContactResponse(contact), nil
}

// List lista los contactos del usuario (más recientes primero).
func (uc *ContactUseCase) List(userID string) ([]*dto.ContactResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContactResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toContactResponse(c))
	}
	return out, nil
}

// Update actualiza un contacto con semántica parcial: los campos ausentes no
// cambian. La bolsa custom_fields, si viene presente y es objeto, REEMPLAZA
// por completo la almacenada (no hay merge profundo); si falta, se conserva.
func (uc *ContactUseCase) Update(userID, id string, in dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	contact, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, nil
	}
	if in.Name != nil {
		contact.Name = *in.Name
	}
	if in.Email != nil {
		contact.Email = *in.Email
	}
	if in.Phone != nil {
		contact.Phone = *in.Phone
	}
	if in.CompanyID != nil {
		contact.CompanyID = normalizeRef(in.CompanyID)
	}
	if bag, ok := objectBag(in.CustomFields); ok {
		contact.CustomFields = bag
	}
	contact.UpdatedAt = time.Now()
	if err := uc.repo.Update(contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// Delete elimina un contacto acotado al usuario. Los deals que lo referencian
// quedan con contact_id en NULL (regla FK, no lógica de aplicación).
func (uc *ContactUseCase) Delete(userID, id string) error {
	return uc.repo.Delete(userID, id)
}

// normalizeRef convierte la cadena vacía en nil: "" desvincula la referencia.
func normalizeRef(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	return ref
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	return &dto.ContactResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		CompanyID:    c.CompanyID,
		CompanyName:  c.CompanyName,
		CustomFields: coalesceBag(c.CustomFields),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
