package ventas

import (
	"time"

	"puntoventa-backend/internal/database"
	"puntoventa-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CrearVentaRequest struct {
	Fecha      string  `json:"Fecha"` // YYYY-MM-DD
	EmpleadoID uint    `json:"EmpleadoID"`
	Total      float64 `json:"Total"`
}

// POST /ventas
func CrearVentaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CrearVentaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}

		if body.EmpleadoID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "EmpleadoID es obligatorio")
		}
		if body.Total < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Total no puede ser negativo")
		}

		fecha, err := parseFecha(body.Fecha)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Fecha inválida, formato esperado YYYY-MM-DD")
		}
		if fecha.IsZero() {
			fecha = time.Now()
		}

		v := models.Venta{
			Fecha:      fecha,
			EmpleadoID: body.EmpleadoID,
			Total:      body.Total,
		}
		if err := database.DB.Create(&v).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo registrar la venta")
		}

		return c.Status(fiber.StatusCreated).JSON(v)
	}
}

// GET /ventas
func ListarVentasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var ventas []models.Venta
		if err := database.DB.Order("venta_id asc").Find(&ventas).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las ventas")
		}
		return c.JSON(ventas)
	}
}

func parseFecha(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
