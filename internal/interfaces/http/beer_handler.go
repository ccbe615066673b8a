package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cervezas-api/internal/application/dto"
	"github.com/jhoicas/cervezas-api/internal/application/usecase"
	"github.com/jhoicas/cervezas-api/internal/domain"
	"github.com/jhoicas/cervezas-api/pkg/validator"
)

// BeerHandler maneja las peticiones HTTP para Beer.
type BeerHandler struct {
	uc *usecase.BeerUseCase
}

// NewBeerHandler construye el handler.
func NewBeerHandler(uc *usecase.BeerUseCase) *BeerHandler {
	return &BeerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar cerveza
// @Tags         beers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBeerRequest  true  "Datos de la cerveza"
// @Success      201   {object}  dto.BeerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/beers [post]
func (h *BeerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBeerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.Validate(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.FormatErrors(err)})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrBeerAlreadyRegistered) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ALREADY_REGISTERED", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByName godoc
// @Summary      Obtener cerveza por nombre
// @Tags         beers
// @Produce      json
// @Param        name  path  string  true  "Nombre exacto de la cerveza"
// @Success      200   {object}  dto.BeerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/beers/{name} [get]
func (h *BeerHandler) GetByName(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NAME", Message: "name es requerido"})
	}
	out, err := h.uc.GetByName(c.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrBeerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cervezas
// @Tags         beers
// @Produce      json
// @Success      200  {array}  dto.BeerResponse
// @Router       /api/v1/beers [get]
func (h *BeerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeleteByID godoc
// @Summary      Eliminar cerveza por ID
// @Tags         beers
// @Param        id  path  string  true  "ID de la cerveza"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/beers/{id} [delete]
func (h *BeerHandler) DeleteByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.DeleteByID(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrBeerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Increment godoc
// @Summary      Incrementar stock
// @Tags         beers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cerveza"
// @Param        body  body  dto.QuantityRequest  true  "Cantidad a incrementar (0..100)"
// @Success      200   {object}  dto.BeerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/beers/{id}/increment [patch]
func (h *BeerHandler) Increment(c *fiber.Ctx) error {
	return h.adjust(c, h.uc.Increment)
}

// Decrement godoc
// @Summary      Decrementar stock
// @Tags         beers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cerveza"
// @Param        body  body  dto.QuantityRequest  true  "Cantidad a decrementar (0..100)"
// @Success      200   {object}  dto.BeerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/beers/{id}/decrement [patch]
func (h *BeerHandler) Decrement(c *fiber.Ctx) error {
	return h.adjust(c, h.uc.Decrement)
}

// adjust factoriza el flujo común de incremento y decremento.
func (h *BeerHandler) adjust(c *fiber.Ctx, op func(ctx context.Context, id string, quantity int) (*dto.BeerResponse, error)) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.QuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.Validate(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.FormatErrors(err)})
	}
	out, err := op(c.Context(), id, in.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrBeerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrStockExceeded) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "STOCK_EXCEEDED", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
