package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

const (
	testUserA = "00000000-0000-0000-0000-0000000000aa"
	testUserB = "00000000-0000-0000-0000-0000000000bb"
)

func newCustomFieldUC() *usecase.CustomFieldUseCase {
	return usecase.NewCustomFieldUseCase(&fakeCustomFieldRepo{})
}

// ──────────────────────────────────────────────────────────────────────────────
// Define — derivación de slug y unicidad
// ──────────────────────────────────────────────────────────────────────────────

func TestDefine_DerivaSlugDelNombre(t *testing.T) {
	uc := newCustomFieldUC()

	out, err := uc.Define(testUserA, dto.CreateCustomFieldRequest{
		EntityType: entity.EntityTypeContact,
		FieldName:  "Job Title",
		FieldType:  entity.FieldTypeText,
	})
	require.NoError(t, err)

	assert.Equal(t, "job_title", out.Slug, "el slug debe derivarse del nombre visible")
	assert.Equal(t, "Job Title", out.FieldName, "el nombre visible se conserva tal cual")
	assert.Equal(t, 1, out.DisplayOrder, "el primer campo recibe display_order 1")
}

// Dos nombres visibles distintos que normalizan al mismo slug chocan: el
// segundo Define debe fallar con ErrDuplicate.
func TestDefine_NombresQueColisionanEnSlug_RetornaDuplicate(t *testing.T) {
	uc := newCustomFieldUC()

	_, err := uc.Define(testUserA, dto.CreateCustomFieldRequest{
		EntityType: entity.EntityTypeContact,
		FieldName:  "Job Title",
	})
	require.NoError(t, err)

	_, err = uc.Define(testUserA, dto.CreateCustomFieldRequest{
		EntityType: entity.EntityTypeContact,
		FieldName:  "job   title!!",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"nombres distintos con el mismo slug deben rechazarse como duplicado")
}

// El mismo slug es válido en tipos de entidad distintos: los registros de
// contact y company son independientes.
func TestDefine_MismoSlugEnOtraEntidad_EsValido(t *testing.T) {
	uc := newCustomFieldUC()

	_, err := uc.Define(testUserA, dto.CreateCustomFieldRequest{
		EntityType: entity.EntityTypeContact,
		FieldName:  "Industry",
	})
	require.NoError(t, err)

	out, err := uc.Define(testUserA, dto.CreateCustomFieldRequest{
		EntityType: entity.EntityTypeCompany,
		FieldName:  "Industry",
	})
	require.NoError(t, err, "el mismo slug en company no choca con el de contact")
	assert.Equal(t, "industry", out.Slug)
	assert.Equal(t, 1, out.DisplayOrder, "el contador de orden es por (usuario, entidad)")
}

// El mismo slug también es válido para otro usuario: tenants aislados.
func TestDefine_MismoSlugOtroUsuario_EsValido(t *testing.T) {
	uc := newCustomFieldUC()

	_, err := uc.Define(testUserA, dto.CreateCustomFieldRequest{
		EntityType: entity.EntityTypeContact,
		FieldName:  "Budget",
	})
	require.NoError(t, err)

	_, err = uc.Define(testUserB, dto.CreateCustomFieldRequest{
		EntityType: entity.EntityTypeContact,
		FieldName:  "Budget",
	})
	assert.NoError(t, err, "cada usuario tiene su propio registro de campos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Define — validación de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestDefine_NombreSoloPuntuacion_RetornaInvalidInput(t *testing.T) {
	uc := newCustomFieldUC()
	_, err := uc.Define(testUserA, dto.CreateCustomFieldRequest{
		EntityType: entity.EntityTypeContact,
		FieldName:  "!!!",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un nombre que normaliza a slug vacío debe rechazarse")
}

func TestDefine_NombreVacio_RetornaInvalidInput(t *testing.T) {
	uc := newCustomFieldUC()
	_, err := uc.Define(testUserA, dto.CreateCustomFieldRequest{
		EntityType: entity.EntityTypeContact,
		FieldName:  "",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDefine_EntityTypeInvalido_RetornaInvalidInput(t *testing.T) {
	uc := newCustomFieldUC()
	_, err := uc.Define(testUserA, dto.CreateCustomFieldRequest{
		EntityType: "deal",
		FieldName:  "Budget",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"solo contact y company soportan campos personalizados")
}

// Un field_type fuera del catálogo no se rechaza: cae a "text".
func TestDefine_FieldTypeDesconocido_CaeAText(t *testing.T) {
	uc := newCustomFieldUC()
	out, err := uc.Define(testUserA, dto.CreateCustomFieldRequest{
		EntityType: entity.EntityTypeContact,
		FieldName:  "Favorite Color",
		FieldType:  "rainbow",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.FieldTypeText, out.FieldType)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden de presentación y listado
// ──────────────────────────────────────────────────────────────────────────────

func TestDefine_DisplayOrderSecuencialPorEntidad(t *testing.T) {
	uc := newCustomFieldUC()

	for i, name := range []string{"Budget", "Lead Source", "Priority"} {
		out, err := uc.Define(testUserA, dto.CreateCustomFieldRequest{
			EntityType: entity.EntityTypeContact,
			FieldName:  name,
		})
		require.NoError(t, err)
		assert.Equal(t, i+1, out.DisplayOrder)
	}
}

func TestList_FiltraPorEntityType(t *testing.T) {
	uc := newCustomFieldUC()

	for _, d := range []struct{ et, name string }{
		{entity.EntityTypeContact, "Budget"},
		{entity.EntityTypeCompany, "Industry"},
		{entity.EntityTypeContact, "Lead Source"},
	} {
		_, err := uc.Define(testUserA, dto.CreateCustomFieldRequest{EntityType: d.et, FieldName: d.name})
		require.NoError(t, err)
	}

	contacts, err := uc.List(testUserA, entity.EntityTypeContact)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "budget", contacts[0].Slug)
	assert.Equal(t, "lead_source", contacts[1].Slug)

	all, err := uc.List(testUserA, "")
	require.NoError(t, err)
	assert.Len(t, all, 3, "sin filtro se listan todas las definiciones del usuario")
}

func TestList_NoVeCamposDeOtroUsuario(t *testing.T) {
	uc := newCustomFieldUC()

	_, err := uc.Define(testUserA, dto.CreateCustomFieldRequest{
		EntityType: entity.EntityTypeContact,
		FieldName:  "Budget",
	})
	require.NoError(t, err)

	out, err := uc.List(testUserB, "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Remove
// ──────────────────────────────────────────────────────────────────────────────

func TestRemove_EliminaYLiberaElSlug(t *testing.T) {
	uc := newCustomFieldUC()

	created, err := uc.Define(testUserA, dto.CreateCustomFieldRequest{
		EntityType: entity.EntityTypeContact,
		FieldName:  "Budget",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Remove(testUserA, created.ID))

	// El slug queda libre para redefinirse.
	_, err = uc.Define(testUserA, dto.CreateCustomFieldRequest{
		EntityType: entity.EntityTypeContact,
		FieldName:  "Budget",
	})
	assert.NoError(t, err, "tras eliminar, el slug puede definirse de nuevo")
}

func TestRemove_IDDeOtroUsuario_RetornaNotFound(t *testing.T) {
	uc := newCustomFieldUC()

	created, err := uc.Define(testUserA, dto.CreateCustomFieldRequest{
		EntityType: entity.EntityTypeContact,
		FieldName:  "Budget",
	})
	require.NoError(t, err)

	err = uc.Remove(testUserB, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un registro ajeno es indistinguible de uno inexistente")
}
