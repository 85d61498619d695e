package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/riosdeldesierto/clientes-api/internal/application/dto"
	"github.com/riosdeldesierto/clientes-api/internal/application/loyalty"
)

// ReportHandler maneja la generación del reporte de fidelización.
type ReportHandler struct {
	uc *loyalty.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *loyalty.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// FidelityReport GET /api/v1/reportes/clientes-fidelizacion?monto_minimo=5000000
// Descarga el XLSX; 404 con mensaje descriptivo cuando ningún cliente califica.
func (h *ReportHandler) FidelityReport(c *fiber.Ctx) error {
	threshold := h.uc.DefaultThreshold()
	if raw := c.Query("monto_minimo"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil || parsed.IsNegative() {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "el parámetro 'monto_minimo' debe ser un número no negativo",
			})
		}
		threshold = parsed
	}

	file, err := h.uc.GenerateReportFile(c.UserContext(), threshold, time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.MIME)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	return c.Send(file.Content)
}
