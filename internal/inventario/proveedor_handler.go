package inventario

import (
	"strings"

	"puntoventa-backend/internal/database"
	"puntoventa-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CrearProveedorRequest struct {
	Nombre    string `json:"Nombre"`
	Telefono  string `json:"Telefono"`
	Email     string `json:"Email"`
	Direccion string `json:"Direccion"`
}

// POST /proveedores
func CrearProveedorHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CrearProveedorRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}

		body.Nombre = strings.TrimSpace(body.Nombre)
		if body.Nombre == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nombre es obligatorio")
		}

		p := models.Proveedor{
			Nombre:    body.Nombre,
			Telefono:  strings.TrimSpace(body.Telefono),
			Email:     strings.TrimSpace(body.Email),
			Direccion: strings.TrimSpace(body.Direccion),
		}
		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear el proveedor")
		}

		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// GET /proveedores
func ListarProveedoresHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var proveedores []models.Proveedor
		if err := database.DB.Order("proveedor_id asc").Find(&proveedores).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar los proveedores")
		}
		return c.JSON(proveedores)
	}
}
