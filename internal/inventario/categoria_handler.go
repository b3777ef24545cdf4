package inventario

import (
	"strings"

	"puntoventa-backend/internal/database"
	"puntoventa-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CrearCategoriaRequest struct {
	Nombre      string `json:"Nombre"`
	Descripcion string `json:"Descripcion"`
}

// POST /categorias
func CrearCategoriaHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CrearCategoriaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}

		body.Nombre = strings.TrimSpace(body.Nombre)
		if body.Nombre == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nombre es obligatorio")
		}

		cat := models.Categoria{
			Nombre:      body.Nombre,
			Descripcion: strings.TrimSpace(body.Descripcion),
		}
		if err := database.DB.Create(&cat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo crear la categoría")
		}

		return c.Status(fiber.StatusCreated).JSON(cat)
	}
}

// GET /categorias
func ListarCategoriasHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var categorias []models.Categoria
		if err := database.DB.Order("categoria_id asc").Find(&categorias).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudieron listar las categorías")
		}
		return c.JSON(categorias)
	}
}
