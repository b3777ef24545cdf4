package personal

import (
	"strings"
	"time"

	"puntoventa-backend/internal/database"
	"puntoventa-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CrearEmpleadoRequest struct {
	Nombre       string `json:"Nombre"`
	Puesto       string `json:"Puesto"`
	FechaIngreso string `json:"FechaIngreso"` // YYYY-MM-DD
}

// POST /empleados
func CrearEmpleadoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CrearEmpleadoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}

		body.Nombre = strings.TrimSpace(body.Nombre)
		body.Puesto = strings.TrimSpace(body.Puesto)
		if body.Nombre == "" || body.Puesto == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nombre y Puesto son obligatorios")
		}

		fecha, err := parseFecha(body.FechaIngreso)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "FechaIngreso inválida, formato esperado YYYY-MM-DD")
		}

		e := models.Empleado{
			Nombre:       body.Nombre,
			Puesto:       body.Puesto,
			FechaIngreso: fecha,
		}
		if err := database.DB.Create(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el empleado")
		}

		return c.Status(fiber.StatusCreated).JSON(e)
	}
}

// GET /empleados
func ListarEmpleadosHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var empleados []models.Empleado
		if err := database.DB.Order("empleado_id asc").Find(&empleados).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los empleados")
		}
		return c.JSON(empleados)
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
