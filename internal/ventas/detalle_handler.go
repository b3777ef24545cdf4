package ventas

import (
	"puntoventa-backend/internal/database"
	"puntoventa-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CrearDetalleVentaRequest struct {
	VentaID        uint    `json:"VentaID"`
	ProductoID     uint    `json:"ProductoID"`
	Cantidad       int     `json:"Cantidad"`
	PrecioUnitario float64 `json:"PrecioUnitario"`
	Subtotal       float64 `json:"Subtotal"`
}

// POST /detalleventas
func CrearDetalleVentaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CrearDetalleVentaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}

		if body.VentaID == 0 || body.ProductoID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "VentaID y ProductoID son obligatorios")
		}
		if body.Cantidad <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Cantidad debe ser mayor que cero")
		}

		d := models.DetalleVenta{
			VentaID:        body.VentaID,
			ProductoID:     body.ProductoID,
			Cantidad:       body.Cantidad,
			PrecioUnitario: body.PrecioUnitario,
			Subtotal:       body.Subtotal,
		}
		if err := database.DB.Create(&d).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar el detalle de venta")
		}

		return c.Status(fiber.StatusCreated).JSON(d)
	}
}

// GET /detalleventas
func ListarDetallesVentaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var detalles []models.DetalleVenta
		if err := database.DB.Order("detalle_id asc").Find(&detalles).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los detalles de venta")
		}
		return c.JSON(detalles)
	}
}
