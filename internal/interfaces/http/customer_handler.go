package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/riosdeldesierto/clientes-api/internal/application/dto"
	"github.com/riosdeldesierto/clientes-api/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc       *usecase.CustomerUseCase
	exportUC *usecase.ExportUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, exportUC *usecase.ExportUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, exportUC: exportUC}
}

// Create POST /api/v1/clientes
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido, se espera JSON"})
	}
	customer, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// Lookup GET|POST /api/v1/clientes/buscar
// GET usa query params (tipo_documento, numero_documento); POST acepta JSON.
func (h *CustomerHandler) Lookup(c *fiber.Ctx) error {
	in, err := parseLookup(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "parámetros inválidos"})
	}
	customer, err := h.uc.LookupByDocument(c.UserContext(), in.TipoDocumento, in.NumeroDocumento)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// Export GET|POST /api/v1/clientes/exportar
// Responde el archivo como attachment con su Content-Type según el formato.
func (h *CustomerHandler) Export(c *fiber.Ctx) error {
	in, err := parseLookup(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "parámetros inválidos"})
	}
	file, err := h.exportUC.Export(c.UserContext(), in.TipoDocumento, in.NumeroDocumento, in.Formato)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.MIME)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	return c.Send(file.Content)
}

// Delete DELETE /api/v1/clientes/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseLookup combina query params y cuerpo JSON: la búsqueda acepta
// GET con query string y POST con JSON; el cuerpo tiene precedencia.
func parseLookup(c *fiber.Ctx) (*dto.LookupCustomerRequest, error) {
	var in dto.LookupCustomerRequest
	if err := c.QueryParser(&in); err != nil {
		return nil, err
	}
	if c.Method() == fiber.MethodPost && len(c.Body()) > 0 {
		var body dto.LookupCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return nil, err
		}
		if body.TipoDocumento != "" {
			in.TipoDocumento = body.TipoDocumento
		}
		if body.NumeroDocumento != "" {
			in.NumeroDocumento = body.NumeroDocumento
		}
		if body.Formato != "" {
			in.Formato = body.Formato
		}
	}
	return &in, nil
}
