package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/credit-service/internal/application/dto"
	"github.com/jhoicas/credit-service/internal/domain"
)

// respond escribe la envoltura BaseResponse {status, message, data}.
func respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.BaseResponse{Status: status, Message: message, Data: data})
}

// respondError mapea errores de dominio a códigos HTTP:
// validación 400, no encontrado 404, duplicado 409, upstream caído 503, resto 500.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrCustomerNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrTypeMismatch),
		errors.Is(err, domain.ErrOverdueDebt),
		errors.Is(err, domain.ErrOnlyOneCredit):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicate):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrCustomerServiceUnavailable),
		errors.Is(err, domain.ErrAccountServiceUnavailable):
		status = fiber.StatusServiceUnavailable
	}
	return respond(c, status, err.Error(), nil)
}
