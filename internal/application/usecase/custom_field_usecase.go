package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/crm"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// CustomFieldUseCase casos de uso del registro de campos personalizados.
type CustomFieldUseCase struct {
	repo repository.CustomFieldRepository
}

// NewCustomFieldUseCase construye el caso de uso.
func NewCustomFieldUseCase(repo repository.CustomFieldRepository) *CustomFieldUseCase {
	return &CustomFieldUseCase{repo: repo}
}

// Define crea una definición de campo personalizado. El slug se deriva del
// field_name y es inmutable; un slug vacío (nombre solo de puntuación) se
// rechaza con ErrInvalidInput. FieldType no reconocido cae a "text".
// Slug duplicado dentro de (user, entity_type) retorna ErrDuplicate.
func (uc *CustomFieldUseCase) Define(userID string, in dto.CreateCustomFieldRequest) (*dto.CustomFieldResponse, error) {
	if in.FieldName == "" || !entity.ValidEntityType(in.EntityType) {
		return nil, domain.ErrInvalidInput
	}
	slug := crm.DeriveSlug(in.FieldName)
	if slug == "" {
		return nil, domain.ErrInvalidInput
	}
	field := &entity.CustomField{
		ID:         uuid.New().String(),
		UserID:     userID,
		EntityType: in.EntityType,
		FieldName:  strings.TrimSpace(in.FieldName),
		Slug:       slug,
		FieldType:  entity.NormalizeFieldType(in.FieldType),
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(field); err != nil {
		return nil, err
	}
	return toCustomFieldResponse(field), nil
}

// List devuelve las definiciones del usuario ordenadas por
// (entity_type, display_order, field_name). entityType vacío = todas.
func (uc *CustomFieldUseCase) List(userID, entityType string) ([]*dto.CustomFieldResponse, error) {
	list, err := uc.repo.ListByUser(userID, entityType)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomFieldResponse, 0, len(list))
	for _, f := range list {
		out = append(out, toCustomFieldResponse(f))
	}
	return out, nil
}

// Remove elimina una definición acotada al usuario. No toca los valores ya
// guardados en las bolsas de contactos/empresas: esas claves quedan huérfanas
// en silencio.
func (uc *CustomFieldUseCase) Remove(userID, id string) error {
	return uc.repo.Delete(userID, id)
}

func toCustomFieldResponse(f *entity.CustomField) *dto.CustomFieldResponse {
	return &dto.CustomFieldResponse{
		ID:           f.ID,
		EntityType:   f.EntityType,
		FieldName:    f.FieldName,
		Slug:         f.Slug,
		FieldType:    f.FieldType,
		DisplayOrder: f.DisplayOrder,
		CreatedAt:    f.CreatedAt,
	}
}
