package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// CompanyUseCase casos de uso CRUD para empresas.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una empresa. La bolsa custom_fields se normaliza a objeto
// (ausente o no-objeto -> {}) y se guarda sin validar slugs.
func (uc *CompanyUseCase) Create(userID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	company := &entity.Company{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         in.Name,
		Website:      in.Website,
		CustomFields: normalizeBag(in.CustomFields),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa acotada al usuario.
func (uc *CompanyUseCase) GetByID(userID, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// List lista las empresas del usuario (más recientes primero).
func (uc *CompanyUseCase) List(userID string) ([]*dto.CompanyResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCompanyResponse(c))
	}
	return out, nil
}

// Update actualiza una empresa con semántica parcial. La bolsa custom_fields,
// si viene presente y es objeto, REEMPLAZA por completo la almacenada.
func (uc *CompanyUseCase) Update(userID, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Website != nil {
		company.Website = *in.Website
	}
	if bag, ok := objectBag(in.CustomFields); ok {
		company.CustomFields = bag
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete elimina una empresa acotada al usuario. Contactos y deals que la
// referencian quedan con company_id en NULL (regla FK ON DELETE SET NULL).
func (uc *CompanyUseCase) Delete(userID, id string) error {
	return uc.repo.Delete(userID, id)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		Website:      c.Website,
		CustomFields: coalesceBag(c.CustomFields),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
