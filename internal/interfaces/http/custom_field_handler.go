package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/domain"
)

// CustomFieldHandler maneja las peticiones HTTP del registro de campos
// personalizados (protegido, bajo /api/settings).
type CustomFieldHandler struct {
	uc *usecase.CustomFieldUseCase
}

// NewCustomFieldHandler construye el handler.
func NewCustomFieldHandler(uc *usecase.CustomFieldUseCase) *CustomFieldHandler {
	return &CustomFieldHandler{uc: uc}
}

// List godoc
// @Summary      Listar definiciones de campos personalizados
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Param        entity_type  query  string  false  "Filtrar por tipo de entidad"  Enums(contact, company)
// @Success      200  {array}  dto.CustomFieldResponse
// @Router       /api/settings/custom-fields [get]
func (h *CustomFieldHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.List(userID, c.Query("entity_type"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Definir campo personalizado
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomFieldRequest  true  "entity_type, field_name, field_type opcional"
// @Success      201   {object}  dto.CustomFieldResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/custom-fields [post]
func (h *CustomFieldHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateCustomFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Define(userID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entity_type debe ser contact o company y field_name debe producir un slug válido"})
		}
		// El cliente corrige reenviando con otro nombre: 400, no 409.
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un campo con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar definición de campo personalizado
// @Tags         settings
// @Security     Bearer
// @Param        id  path  string  true  "ID de la definición"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settings/custom-fields/{id} [delete]
func (h *CustomFieldHandler) Delete(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.uc.Remove(userID, c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "campo personalizado no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
