package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// DealUseCase casos de uso CRUD para negocios. Esquema fijo: sin campos
// personalizados.
type DealUseCase struct {
	repo repository.DealRepository
}

// NewDealUseCase construye el caso de uso.
func NewDealUseCase(repo repository.DealRepository) *DealUseCase {
	return &DealUseCase{repo: repo}
}

// Create crea un negocio. Value ausente vale 0 y Stage ausente vale "lead".
// Stage es texto libre: no se valida contra el pipeline nominal.
func (uc *DealUseCase) Create(userID string, in dto.CreateDealRequest) (*dto.DealResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	stage := in.Stage
	if stage == "" {
		stage = entity.StageLead
	}
	now := time.Now()
	deal := &entity.Deal{
		ID:        uuid.New().String(),
		UserID:    userID,
		ContactID: normalizeRef(in.ContactID),
		CompanyID: normalizeRef(in.CompanyID),
		Title:     in.Title,
		Value:     in.Value,
		Stage:     stage,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(deal); err != nil {
		return nil, err
	}
	return toDealResponse(deal), nil
}

// GetByID obtiene un negocio acotado al usuario.
func (uc *DealUseCase) GetByID(userID, id string) (*dto.DealResponse, error) {
	deal, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, nil
	}
	return toDealResponse(deal), nil
}

// List lista los negocios del usuario (más recientes primero).
func (uc *DealUseCase) List(userID string) ([]*dto.DealResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DealResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDealResponse(d))
	}
	return out, nil
}

// Update actualiza un negocio con semántica parcial (campos ausentes no
// cambian). ContactID/CompanyID con cadena vacía desvinculan la referencia.
func (uc *DealUseCase) Update(userID, id string, in dto.UpdateDealRequest) (*dto.DealResponse, error) {
	deal, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, nil
	}
	if in.Title != nil {
		deal.Title = *in.Title
	}
	if in.Value != nil {
		deal.Value = *in.Value
	}
	if in.Stage != nil {
		deal.Stage = *in.Stage
	}
	if in.ContactID != nil {
		deal.ContactID = normalizeRef(in.ContactID)
	}
	if in.CompanyID != nil {
		deal.CompanyID = normalizeRef(in.CompanyID)
	}
	deal.UpdatedAt = time.Now()
	if err := uc.repo.Update(deal); err != nil {
		return nil, err
	}
	return toDealResponse(deal), nil
}

// Delete elimina un negocio acotado al usuario.
func (uc *DealUseCase) Delete(userID, id string) error {
	return uc.repo.Delete(userID, id)
}

func toDealResponse(d *entity.Deal) *dto.DealResponse {
	return &dto.DealResponse{
		ID:          d.ID,
		Title:       d.Title,
		Value:       d.Value,
		Stage:       d.Stage,
		ContactID:   d.ContactID,
		CompanyID:   d.CompanyID,
		ContactName: d.ContactName,
		CompanyName: d.CompanyName,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
